// Package hc12 drives an HC-12 433 MHz UART radio module.
//
// The module has two regimes: a transparent regime where bytes pass
// straight through at the programmed baud rate and sub-mode, and a
// command regime, entered by pulling the SET line low, where the host
// reprograms channel, power, sub-mode and baud rate with AT commands.
// The wire always runs at 9600 bps while in the command regime,
// whatever baud rate is programmed for transparent operation.
package hc12

import (
	"fmt"
	"time"
)

// BaudRate is one of the module's eight supported host baud rates,
// identified by its bits-per-second value.
type BaudRate int

const (
	B1200   BaudRate = 1200
	B2400   BaudRate = 2400
	B4800   BaudRate = 4800
	B9600   BaudRate = 9600
	B19200  BaudRate = 19200
	B38400  BaudRate = 38400
	B57600  BaudRate = 57600
	B115200 BaudRate = 115200
)

// ATBaud is the fixed wire rate while the module is in the command
// regime, regardless of the programmed transparent rate.
const ATBaud = B9600

// BaudRates lists every supported rate, lowest first.
var BaudRates = []BaudRate{B1200, B2400, B4800, B9600, B19200, B38400, B57600, B115200}

// Valid reports whether b is one of the module's supported rates.
func (b BaudRate) Valid() bool {
	switch b {
	case B1200, B2400, B4800, B9600, B19200, B38400, B57600, B115200:
		return true
	}
	return false
}

// BPS returns the host-side bits-per-second value.
func (b BaudRate) BPS() int {
	return int(b)
}

// AirRate returns the over-the-air rate in bps for this host rate.
// These come straight from the datasheet; they are not derived.
func (b BaudRate) AirRate() int {
	switch b {
	case B1200, B2400:
		return 5000
	case B4800, B9600:
		return 15000
	case B19200, B38400:
		return 58000
	case B57600, B115200:
		return 236000
	}
	return 0
}

// Mode is one of the module's transparent-regime sub-modes.
type Mode uint8

const (
	// FU1 is a moderate power-saving mode, idle current ~3.5 mA.
	FU1 Mode = iota + 1
	// FU2 is the extreme power-saving mode, idle current ~80 uA.
	// Packets should not be sent more often than once per second.
	FU2
	// FU3 is the factory-default full-speed mode.
	FU3
	// FU4 is the long-range mode, reaching up to 1.8 km. Keep packets
	// under 60 bytes and at least two seconds apart.
	FU4
)

// Code returns the 3-character wire code used in the AT command.
func (m Mode) Code() string {
	switch m {
	case FU1:
		return "FU1"
	case FU2:
		return "FU2"
	case FU3:
		return "FU3"
	case FU4:
		return "FU4"
	}
	return ""
}

func (m Mode) String() string {
	if c := m.Code(); c != "" {
		return c
	}
	return "invalid mode"
}

// ParseMode maps a sub-mode name such as "FU3" to its Mode.
func ParseMode(s string) (Mode, error) {
	for m := FU1; m <= FU4; m++ {
		if m.Code() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("hc12: unknown sub-mode %q", s)
}

// Valid reports whether m is one of the four sub-modes.
func (m Mode) Valid() bool {
	return m >= FU1 && m <= FU4
}

// Supports reports whether the module accepts baud rate b while in
// sub-mode m. The power-saving modes only run at the three lowest
// rates, long range only at the lowest, full speed at all of them.
// This is the single legality table; every construction and transition
// boundary in the package checks it.
func (m Mode) Supports(b BaudRate) bool {
	if !b.Valid() {
		return false
	}
	switch m {
	case FU1, FU2:
		return b <= B4800
	case FU3:
		return true
	case FU4:
		return b == B1200
	}
	return false
}

// Settle windows from the datasheet. The module's firmware needs the
// full window to switch listening mode or process a command; they are
// not configurable.
const (
	// enterCommandSettle follows pulling the SET line low.
	enterCommandSettle = 100 * time.Millisecond
	// exitCommandSettle follows releasing the SET line.
	exitCommandSettle = 80 * time.Millisecond
	// commandSettle follows writing an AT command, before the single
	// response read.
	commandSettle = 100 * time.Millisecond
)
