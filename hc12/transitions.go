package hc12

// Regime transitions. Crossing between the transparent and command
// regimes is a SET line edge followed by a mandatory settle window;
// the firmware needs the full window to switch listening mode before
// anything on the wire can be trusted.
//
// A transition consumes its receiver. On success the same resources
// come back inside a handle for the other regime; on a control-line
// failure they come back inside a *TransitionError so a fresh attempt
// can be composed without re-acquiring hardware.

// EnterCommandMode pulls the SET line low and waits the settle window.
// The returned CommandDevice remembers this link's settings and will
// restore them on exit unless a mode or baud command changes them.
// Blocks for at least 100 ms.
func (d *LinkDevice) EnterCommandMode() (*CommandDevice, error) {
	if d.consumed {
		return nil, ErrConsumed
	}
	d.consumed = true

	if err := d.res.line.SetLow(); err != nil {
		return nil, &TransitionError{
			Err:       err,
			Transport: d.res.transport,
			Line:      d.res.line,
			Delay:     d.res.delay,
		}
	}
	d.res.delay.Sleep(enterCommandSettle)

	return &CommandDevice{res: d.res, config: d.config}, nil
}

// ExitCommandMode releases the SET line and waits the settle window,
// returning the module to the transparent regime at the remembered
// sub-mode and baud rate. Blocks for at least 80 ms.
func (d *CommandDevice) ExitCommandMode() (*LinkDevice, error) {
	if d.consumed {
		return nil, ErrConsumed
	}
	if err := d.config.validate(); err != nil {
		// The session keeps the pair legal; a violation here is a bug.
		return nil, err
	}
	d.consumed = true

	if err := d.res.line.SetHigh(); err != nil {
		return nil, &TransitionError{
			Err:       err,
			Transport: d.res.transport,
			Line:      d.res.line,
			Delay:     d.res.delay,
		}
	}
	d.res.delay.Sleep(exitCommandSettle)

	return &LinkDevice{res: d.res, config: d.config}, nil
}
