package hc12

import "fmt"

// Config holds the module's programmed settings. It is distinct from
// the regime: a device sitting in the command regime still remembers
// the transparent-regime settings it will resume with.
type Config struct {
	Channel Channel
	Power   Power
	Mode    Mode
	Baud    BaudRate
}

// DefaultConfig returns the module's factory settings: channel 1,
// maximum power, full-speed mode at 9600 bps.
func DefaultConfig() Config {
	return Config{
		Channel: 1,
		Power:   P8,
		Mode:    FU3,
		Baud:    B9600,
	}
}

// validate checks every field, including the sub-mode/baud-rate
// legality table. A Config that fails here is never allowed into a
// device handle.
func (c Config) validate() error {
	if !c.Channel.Valid() {
		return &BadChannelError{Value: int(c.Channel)}
	}
	if !c.Power.Valid() {
		return fmt.Errorf("hc12: power level %d out of range 1-8", uint8(c.Power))
	}
	if !c.Mode.Valid() {
		return fmt.Errorf("hc12: invalid sub-mode %d", uint8(c.Mode))
	}
	if !c.Baud.Valid() {
		return fmt.Errorf("hc12: unsupported baud rate %d", int(c.Baud))
	}
	if !c.Mode.Supports(c.Baud) {
		return &IncompatibleError{Mode: c.Mode, Baud: c.Baud}
	}
	return nil
}

// IncompatibleError reports a sub-mode/baud-rate pair outside the
// module's capability table.
type IncompatibleError struct {
	Mode Mode
	Baud BaudRate
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("hc12: sub-mode %s does not support %d bps", e.Mode, int(e.Baud))
}
