package at

import "fmt"

// Command is a fully rendered AT request, CRLF terminator included.
type Command string

// Bytes returns the wire form of the command.
func (c Command) Bytes() []byte {
	return []byte(c)
}

// SetChannel renders a channel change. The channel is always written as
// exactly three zero-padded decimal digits: channel 5 becomes "AT+C005".
// The caller validates the 1-127 range; rendering does not.
func SetChannel(channel uint8) Command {
	return build(fmt.Sprintf("AT+C%03d", channel))
}

// SetPower renders a transmit power change, a single digit 1-8.
func SetPower(level uint8) Command {
	return build(fmt.Sprintf("AT+P%d", level))
}

// SetMode renders a sub-mode change from its 3-character code ("FU3").
func SetMode(code string) Command {
	return build("AT+" + code)
}

// SetBaud renders a baud rate change with the decimal bps value.
func SetBaud(bps int) Command {
	return build(fmt.Sprintf("AT+B%d", bps))
}

// build terminates the command and asserts the wire-length bound. Every
// legal request fits MaxLen; exceeding it means a broken encoder, not
// bad user input.
func build(body string) Command {
	cmd := body + CRLF
	if len(cmd) > MaxLen {
		panic(fmt.Sprintf("at: command %q exceeds %d bytes", cmd, MaxLen))
	}
	return Command(cmd)
}
