package hc12

import (
	"fmt"

	"github.com/fieldlink/hc12ctl/at"
)

// AT session: one command at a time against a module in the command
// regime. The module's microcontroller is slow; every exchange is
// drain, write, a full settle window, then exactly one readiness poll
// and one bounded read. Nothing here retries; every failure carries
// enough for the caller to retry on the same handle.

// exec runs one command exchange and returns the raw response on
// success. On any failure the device state is untouched.
func (d *CommandDevice) exec(cmd at.Command) ([]byte, error) {
	if err := d.res.transport.Drain(); err != nil {
		return nil, fmt.Errorf("hc12: drain before %q: %w", cmd, err)
	}

	n, err := d.res.transport.Write(cmd.Bytes())
	if err != nil {
		return nil, fmt.Errorf("hc12: write %q: %w", cmd, err)
	}
	if n != len(cmd) {
		return nil, &ShortWriteError{Command: string(cmd), Wrote: n}
	}

	d.res.delay.Sleep(commandSettle)

	ready, err := d.res.transport.ReadReady()
	if err != nil {
		return nil, fmt.Errorf("hc12: poll after %q: %w", cmd, err)
	}
	if !ready {
		return nil, ErrNoResponse
	}

	buf := make([]byte, at.ResponseSize)
	n, err = d.res.transport.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("hc12: read response to %q: %w", cmd, err)
	}
	resp := buf[:n]

	if !at.Classify(resp) {
		return resp, &NoOkError{Command: string(cmd), Response: resp}
	}
	return resp, nil
}

// SetChannel programs a new radio channel. On failure the remembered
// configuration is unchanged and the command can be retried.
func (d *CommandDevice) SetChannel(ch Channel) error {
	if d.consumed {
		return ErrConsumed
	}
	if !ch.Valid() {
		return &BadChannelError{Value: int(ch)}
	}
	if _, err := d.exec(at.SetChannel(uint8(ch))); err != nil {
		return err
	}
	d.config.Channel = ch
	return nil
}

// SetPower programs a new transmit power level.
func (d *CommandDevice) SetPower(p Power) error {
	if d.consumed {
		return ErrConsumed
	}
	if !p.Valid() {
		return fmt.Errorf("hc12: power level %d out of range 1-8", uint8(p))
	}
	if _, err := d.exec(at.SetPower(uint8(p))); err != nil {
		return err
	}
	d.config.Power = p
	return nil
}

// SetMode programs a new sub-mode. More destructive than channel or
// power: it consumes the handle and produces a new one, because the
// remembered (sub-mode, baud rate) pair changes. A sub-mode that does
// not support the remembered baud rate is rejected before anything
// touches the wire, and the handle stays usable.
func (d *CommandDevice) SetMode(m Mode) (*CommandDevice, error) {
	if d.consumed {
		return nil, ErrConsumed
	}
	if !m.Valid() {
		return nil, fmt.Errorf("hc12: invalid sub-mode %d", uint8(m))
	}
	if !m.Supports(d.config.Baud) {
		return nil, &IncompatibleError{Mode: m, Baud: d.config.Baud}
	}
	if _, err := d.exec(at.SetMode(m.Code())); err != nil {
		return nil, err
	}

	d.consumed = true
	next := d.config
	next.Mode = m
	return &CommandDevice{res: d.res, config: next}, nil
}

// SetBaudRate programs a new transparent-regime baud rate. Like
// SetMode it consumes the handle on success. The wire keeps running at
// 9600 bps for the rest of the session; the new rate takes effect in
// the transparent regime. A rate the remembered sub-mode cannot run at
// is rejected before anything touches the wire.
func (d *CommandDevice) SetBaudRate(b BaudRate) (*CommandDevice, error) {
	if d.consumed {
		return nil, ErrConsumed
	}
	if !b.Valid() {
		return nil, fmt.Errorf("hc12: unsupported baud rate %d", int(b))
	}
	if !d.config.Mode.Supports(b) {
		return nil, &IncompatibleError{Mode: d.config.Mode, Baud: b}
	}
	if _, err := d.exec(at.SetBaud(b.BPS())); err != nil {
		return nil, err
	}

	d.consumed = true
	next := d.config
	next.Baud = b
	return &CommandDevice{res: d.res, config: next}, nil
}

// Program applies a complete configuration: sub-mode and baud rate
// first, then power and channel. The two destructive settings are
// ordered so the remembered pair stays legal at every step; for any
// legal start and target one of the two orders works. Program consumes
// the handle; on error the returned handle carries whatever subset was
// already applied, so the caller can retry from there.
func (d *CommandDevice) Program(cfg Config) (*CommandDevice, error) {
	if d.consumed {
		return nil, ErrConsumed
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cur := d
	if cfg.Mode.Supports(cur.config.Baud) {
		next, err := cur.SetMode(cfg.Mode)
		if err != nil {
			return cur, err
		}
		cur = next
		if next, err = cur.SetBaudRate(cfg.Baud); err != nil {
			return cur, err
		}
		cur = next
	} else {
		next, err := cur.SetBaudRate(cfg.Baud)
		if err != nil {
			return cur, err
		}
		cur = next
		if next, err = cur.SetMode(cfg.Mode); err != nil {
			return cur, err
		}
		cur = next
	}

	if err := cur.SetPower(cfg.Power); err != nil {
		return cur, err
	}
	if err := cur.SetChannel(cfg.Channel); err != nil {
		return cur, err
	}
	return cur, nil
}
