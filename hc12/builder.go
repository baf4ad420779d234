package hc12

// Builder accumulates the hardware resources for a device handle and
// builds it directly into one of the regimes. A transport alone is
// enough for a non-configurable Stream; the command regime and the
// configurable transparent regime need the SET line and a delay source
// as well.
type Builder struct {
	transport Transport
	line      ControlLine
	delay     Delay
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithTransport(t Transport) *Builder {
	b.transport = t
	return b
}

func (b *Builder) WithControlLine(l ControlLine) *Builder {
	b.line = l
	return b
}

func (b *Builder) WithDelay(d Delay) *Builder {
	b.delay = d
	return b
}

// Stream builds a non-configurable transparent device from the
// transport alone. cfg records what the module is assumed to be
// programmed to; the pair is still checked against the capability
// table, since a Stream claiming an impossible combination is a bug.
func (b *Builder) Stream(cfg Config) (*Stream, error) {
	if b.transport == nil {
		return nil, ErrNoTransport
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Stream{transport: b.transport, config: cfg}, nil
}

// Transparent builds a configurable device in the transparent regime.
// The SET line is asserted high and the settle window waited out, so
// the module is known to be listening transparently when this returns.
// Blocks for at least 80 ms.
func (b *Builder) Transparent(cfg Config) (*LinkDevice, error) {
	res, err := b.require(cfg)
	if err != nil {
		return nil, err
	}

	if err := res.line.SetHigh(); err != nil {
		return nil, &TransitionError{
			Err:       err,
			Transport: res.transport,
			Line:      res.line,
			Delay:     res.delay,
		}
	}
	res.delay.Sleep(exitCommandSettle)

	return &LinkDevice{res: res, config: cfg}, nil
}

// CommandMode builds a device directly in the command regime: the SET
// line is pulled low and the settle window waited out before the handle
// is returned. cfg is the configuration the module is remembered to
// hold and will resume with on exit. Blocks for at least 100 ms.
func (b *Builder) CommandMode(cfg Config) (*CommandDevice, error) {
	res, err := b.require(cfg)
	if err != nil {
		return nil, err
	}

	if err := res.line.SetLow(); err != nil {
		return nil, &TransitionError{
			Err:       err,
			Transport: res.transport,
			Line:      res.line,
			Delay:     res.delay,
		}
	}
	res.delay.Sleep(enterCommandSettle)

	return &CommandDevice{res: res, config: cfg}, nil
}

func (b *Builder) require(cfg Config) (resources, error) {
	if b.transport == nil {
		return resources{}, ErrNoTransport
	}
	if b.line == nil {
		return resources{}, ErrNoControlLine
	}
	if b.delay == nil {
		return resources{}, ErrNoDelay
	}
	if err := cfg.validate(); err != nil {
		return resources{}, err
	}
	return resources{transport: b.transport, line: b.line, delay: b.delay}, nil
}
