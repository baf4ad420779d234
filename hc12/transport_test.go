package hc12

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go.bug.st/serial"
)

func TestSerialDialer_Dial_EmptyPortName(t *testing.T) {
	dialer := SerialDialer{
		PortName: "",
	}

	ctx := context.Background()
	transport, err := dialer.Dial(ctx)

	if err == nil {
		t.Error("expected error for empty port name")
	}
	if transport != nil {
		t.Error("expected nil transport for empty port name")
	}
	if err.Error() != "hc12: serial port name is required" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSerialDialer_Dial_NilContext(t *testing.T) {
	dialer := SerialDialer{
		PortName: "/dev/ttyUSB0",
	}

	transport, err := dialer.Dial(nil)

	if err == nil {
		t.Error("expected error for nil context")
	}
	if transport != nil {
		t.Error("expected nil transport for nil context")
	}
	if err.Error() != "hc12: context is nil" {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSerialDialer_Dial_ContextCanceled(t *testing.T) {
	dialer := SerialDialer{
		PortName: "/dev/nonexistent",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport, err := dialer.Dial(ctx)

	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
	if transport != nil {
		t.Error("expected nil transport for canceled context")
	}
}

// fakePort is an in-memory serial.Port serving a canned receive buffer.
// Like a real port with a read timeout, Read returns whatever is
// buffered, or (0, nil) when the window expires with nothing arrived.
type fakePort struct {
	rx          bytes.Buffer
	readTimeout time.Duration
	restoreErr  error
	resets      int
}

func (p *fakePort) Read(b []byte) (int, error) {
	if p.rx.Len() == 0 {
		return 0, nil
	}
	return p.rx.Read(b)
}

func (p *fakePort) Write(b []byte) (int, error) { return len(b), nil }

func (p *fakePort) SetReadTimeout(d time.Duration) error {
	if d == serialReadTimeout && p.restoreErr != nil {
		return p.restoreErr
	}
	p.readTimeout = d
	return nil
}

func (p *fakePort) ResetInputBuffer() error {
	p.rx.Reset()
	p.resets++
	return nil
}

func (p *fakePort) SetMode(*serial.Mode) error { return nil }
func (p *fakePort) Drain() error               { return nil }
func (p *fakePort) ResetOutputBuffer() error   { return nil }
func (p *fakePort) SetDTR(bool) error          { return nil }
func (p *fakePort) SetRTS(bool) error          { return nil }
func (p *fakePort) Close() error               { return nil }
func (p *fakePort) Break(time.Duration) error  { return nil }

func (p *fakePort) GetModemStatusBits() (*serial.ModemStatusBits, error) { return nil, nil }

func TestSerialTransport_ReadReadyThenFullRead(t *testing.T) {
	port := &fakePort{}
	port.rx.WriteString("OK+C005\r\n")
	transport := &serialTransport{port: port}

	ready, err := transport.ReadReady()
	if err != nil {
		t.Fatalf("unexpected poll error: %v", err)
	}
	if !ready {
		t.Fatal("expected data to be ready")
	}
	if port.readTimeout != serialReadTimeout {
		t.Errorf("read window not restored after poll, got %v", port.readTimeout)
	}

	// The single bounded read must return the whole response, peeked
	// byte included.
	buf := make([]byte, 16)
	n, err := transport.Read(buf)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if got := string(buf[:n]); got != "OK+C005\r\n" {
		t.Errorf("expected full response, got %q (%d bytes)", got, n)
	}
}

func TestSerialTransport_ReadReadyEmpty(t *testing.T) {
	transport := &serialTransport{port: &fakePort{}}

	ready, err := transport.ReadReady()
	if err != nil {
		t.Fatalf("unexpected poll error: %v", err)
	}
	if ready {
		t.Error("expected no data ready on an empty port")
	}
}

func TestSerialTransport_DrainClearsPeek(t *testing.T) {
	port := &fakePort{}
	port.rx.WriteString("stale")
	transport := &serialTransport{port: port}

	if ready, _ := transport.ReadReady(); !ready {
		t.Fatal("expected data to be ready before drain")
	}

	if err := transport.Drain(); err != nil {
		t.Fatalf("unexpected drain error: %v", err)
	}
	if port.resets != 1 {
		t.Errorf("expected one input buffer reset, got %d", port.resets)
	}

	// Neither the peeked byte nor the port buffer may survive.
	if ready, _ := transport.ReadReady(); ready {
		t.Error("expected nothing ready after drain")
	}
}

func TestSerialTransport_ReadReadyRestoreFailure(t *testing.T) {
	restoreErr := errors.New("ioctl failed")
	port := &fakePort{restoreErr: restoreErr}
	port.rx.WriteString("OK")
	transport := &serialTransport{port: port}

	// A port stuck on the 1 ms poll window would starve every later
	// read, so the failed restore must surface.
	if _, err := transport.ReadReady(); !errors.Is(err, restoreErr) {
		t.Errorf("expected restore error, got: %v", err)
	}
}

func TestSerialDialer_Dial_DefaultMode(t *testing.T) {
	dialer := SerialDialer{
		PortName: "/dev/nonexistent",
		// Mode is nil - the command-regime 9600 8N1 defaults apply
	}

	ctx := context.Background()
	transport, err := dialer.Dial(ctx)

	if err == nil {
		t.Error("expected error for non-existent port")
	}
	if transport != nil {
		t.Error("expected nil transport for non-existent port")
	}
}
