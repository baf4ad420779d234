package hc12

import (
	"context"
	"errors"
	"io"
	"time"

	"go.bug.st/serial"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_hc12.go -package=hc12

// Transport is the byte stream to the HC-12's UART pins.
//
// A Transport is assumed to be already connected and ready for use.
// Reads must be bounded: a Read with no data arriving returns within
// the implementation's read window rather than blocking forever.
// Typical implementations are serial ports and in-memory fakes.
type Transport interface {
	io.ReadWriteCloser

	// ReadReady reports whether at least one byte can be read without
	// waiting out the full read window.
	ReadReady() (bool, error)

	// Drain discards everything currently buffered on the receive
	// side. Stale bytes from an earlier exchange must never be
	// mistaken for the next command's response.
	Drain() error
}

// ControlLine is the module's SET pin. Low selects the command regime,
// high the transparent regime.
type ControlLine interface {
	SetHigh() error
	SetLow() error
}

// Dialer opens a Transport to an HC-12.
//
// Dialer abstracts how the connection is created and is intended to be
// used during device construction only. Once a Transport is obtained,
// the Dialer is no longer needed.
type Dialer interface {
	Dial(ctx context.Context) (Transport, error)
}

// SerialDialer opens an HC-12 over a serial port using go.bug.st/serial.
//
// The zero Mode dials 9600 8N1, which is what the module requires while
// in the command regime.
type SerialDialer struct {
	PortName string
	Mode     *serial.Mode
}

// serialReadTimeout bounds the single response read. The module answers
// within its settle window or not at all, so a short window is enough.
const serialReadTimeout = 50 * time.Millisecond

func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if ctx == nil {
		return nil, errors.New("hc12: context is nil")
	}
	if d.PortName == "" {
		return nil, errors.New("hc12: serial port name is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		mode = &serial.Mode{
			BaudRate: ATBaud.BPS(),
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(serialReadTimeout); err != nil {
		port.Close()
		return nil, err
	}

	return &serialTransport{port: port}, nil
}

// serialTransport adapts a serial.Port to Transport. The port API has
// no readiness poll, so ReadReady peeks one byte under a near-zero
// timeout and holds it for the next Read.
type serialTransport struct {
	port serial.Port
	peek []byte
}

func (t *serialTransport) Read(p []byte) (int, error) {
	n := copy(p, t.peek)
	t.peek = t.peek[n:]
	if n == len(p) {
		return n, nil
	}
	m, err := t.port.Read(p[n:])
	if n > 0 && err != nil {
		// The peeked bytes are already delivered; report them and let
		// the error surface on a later read.
		return n + m, nil
	}
	return n + m, err
}

func (t *serialTransport) Write(p []byte) (int, error) {
	return t.port.Write(p)
}

func (t *serialTransport) ReadReady() (bool, error) {
	if len(t.peek) > 0 {
		return true, nil
	}
	if err := t.port.SetReadTimeout(time.Millisecond); err != nil {
		return false, err
	}

	buf := make([]byte, 1)
	n, err := t.port.Read(buf)
	// A failed restore leaves the port on the 1 ms window and would
	// starve every later read, so it fails the poll too.
	if restoreErr := t.port.SetReadTimeout(serialReadTimeout); restoreErr != nil && err == nil {
		err = restoreErr
	}
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	t.peek = append(t.peek, buf[:n]...)
	return true, nil
}

func (t *serialTransport) Drain() error {
	t.peek = nil
	return t.port.ResetInputBuffer()
}

func (t *serialTransport) Close() error {
	return t.port.Close()
}
