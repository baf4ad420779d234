package hc12

import "fmt"

// Channel is a radio channel between 1 and 127. Channels are spaced
// 400 kHz apart starting at 433.0 MHz.
type Channel uint8

// NewChannel validates and returns a channel. Values outside 1-127 are
// rejected here and never reach the protocol layer.
func NewChannel(n int) (Channel, error) {
	if n < 1 || n > 127 {
		return 0, &BadChannelError{Value: n}
	}
	return Channel(n), nil
}

// Valid reports whether the channel is in the 1-127 range. The zero
// value is not a usable channel.
func (c Channel) Valid() bool {
	return c >= 1 && c <= 127
}

// MHz returns the channel's carrier frequency in MHz.
func (c Channel) MHz() float64 {
	return 433.0 + 0.4*float64(c)
}

// KHz returns the channel's carrier frequency in kHz.
func (c Channel) KHz() uint32 {
	return 433_000 + 400*uint32(c)
}

// BadChannelError reports a channel value outside 1-127.
type BadChannelError struct {
	Value int
}

func (e *BadChannelError) Error() string {
	return fmt.Sprintf("hc12: channel %d out of range 1-127", e.Value)
}

// Power is a transmit power level between P1 and P8.
type Power uint8

const (
	P1 Power = iota + 1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
)

// Valid reports whether the level is in the P1-P8 range.
func (p Power) Valid() bool {
	return p >= P1 && p <= P8
}

// DBm returns the published transmit power in dBm for the level. The
// values are the datasheet's table, not a formula.
func (p Power) DBm() int {
	switch p {
	case P1:
		return -1
	case P2:
		return 2
	case P3:
		return 5
	case P4:
		return 8
	case P5:
		return 11
	case P6:
		return 14
	case P7:
		return 17
	case P8:
		return 20
	}
	return 0
}

func (p Power) String() string {
	if !p.Valid() {
		return "invalid power"
	}
	return fmt.Sprintf("P%d", uint8(p))
}
