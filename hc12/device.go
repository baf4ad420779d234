package hc12

// resources is the hardware bundle a device handle owns: the UART
// stream, the SET line and the delay source. Exactly one live handle
// owns a bundle at any time.
type resources struct {
	transport Transport
	line      ControlLine
	delay     Delay
}

// Stream is an HC-12 in the transparent regime built without
// programming resources. It passes bytes through and nothing else;
// there are no configuration operations to misuse. The caller is
// responsible for the module already being configured to match.
type Stream struct {
	transport Transport
	config    Config
	consumed  bool
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.consumed {
		return 0, ErrConsumed
	}
	return s.transport.Read(p)
}

func (s *Stream) Write(p []byte) (int, error) {
	if s.consumed {
		return 0, ErrConsumed
	}
	return s.transport.Write(p)
}

func (s *Stream) ReadReady() (bool, error) {
	if s.consumed {
		return false, ErrConsumed
	}
	return s.transport.ReadReady()
}

// Config returns the settings the module is assumed to be running.
func (s *Stream) Config() Config {
	return s.config
}

// Release consumes the handle and hands the transport back.
func (s *Stream) Release() (Transport, error) {
	if s.consumed {
		return nil, ErrConsumed
	}
	s.consumed = true
	return s.transport, nil
}

// LinkDevice is an HC-12 in the transparent regime with programming
// resources attached. It passes bytes through at the programmed baud
// rate and sub-mode, and can cross into the command regime.
type LinkDevice struct {
	res      resources
	config   Config
	consumed bool
}

func (d *LinkDevice) Read(p []byte) (int, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	return d.res.transport.Read(p)
}

func (d *LinkDevice) Write(p []byte) (int, error) {
	if d.consumed {
		return 0, ErrConsumed
	}
	return d.res.transport.Write(p)
}

func (d *LinkDevice) ReadReady() (bool, error) {
	if d.consumed {
		return false, ErrConsumed
	}
	return d.res.transport.ReadReady()
}

// Config returns the programmed settings the link is running at.
func (d *LinkDevice) Config() Config {
	return d.config
}

// Release consumes the handle and hands the raw resources back.
func (d *LinkDevice) Release() (Transport, ControlLine, Delay, error) {
	if d.consumed {
		return nil, nil, nil, ErrConsumed
	}
	d.consumed = true
	return d.res.transport, d.res.line, d.res.delay, nil
}

// CommandDevice is an HC-12 in the command regime: SET line low, wire
// at 9600 bps, AT commands accepted. Its Config is the remembered
// transparent-regime settings the module will resume with.
type CommandDevice struct {
	res      resources
	config   Config
	consumed bool
}

// Config returns the remembered transparent-regime settings, updated
// as setting commands succeed.
func (d *CommandDevice) Config() Config {
	return d.config
}

// Release consumes the handle and hands the raw resources back. The
// module is left in the command regime; the caller owns the SET line.
func (d *CommandDevice) Release() (Transport, ControlLine, Delay, error) {
	if d.consumed {
		return nil, nil, nil, ErrConsumed
	}
	d.consumed = true
	return d.res.transport, d.res.line, d.res.delay, nil
}
