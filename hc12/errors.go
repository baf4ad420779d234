package hc12

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTransport is returned when a device is built without a
	// transport.
	ErrNoTransport = errors.New("hc12: no transport configured")

	// ErrNoControlLine is returned when the command regime is requested
	// from a builder that was never given a SET line.
	ErrNoControlLine = errors.New("hc12: no control line configured")

	// ErrNoDelay is returned when the command regime is requested from
	// a builder that was never given a delay source.
	ErrNoDelay = errors.New("hc12: no delay source configured")

	// ErrConsumed is returned by every operation on a device handle
	// that has already been consumed by a transition, setting change or
	// Release. Exactly one live handle owns the hardware at a time.
	ErrConsumed = errors.New("hc12: use of consumed device handle")

	// ErrNoResponse is returned when the transport reported no data
	// ready after the command settle window. The command may simply
	// have been lost; the caller can retry it on the same handle.
	ErrNoResponse = errors.New("hc12: no response from module")
)

// NoOkError reports a response that arrived but did not contain the
// "OK" marker. The raw bytes are kept for diagnostics; the command can
// be retried on the same handle.
type NoOkError struct {
	Command  string
	Response []byte
}

func (e *NoOkError) Error() string {
	return fmt.Sprintf("hc12: command %q: response without OK: %q", e.Command, e.Response)
}

// ShortWriteError reports a command that was not written to the
// transport in full. Fatal to the attempt; nothing was settled or read.
type ShortWriteError struct {
	Command string
	Wrote   int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("hc12: short write of command %q: %d of %d bytes", e.Command, e.Wrote, len(e.Command))
}

// TransitionError reports a failed regime transition. The control-line
// write failed, so the device handle was destroyed; the raw resources
// ride along so a fresh attempt can be composed without re-acquiring
// hardware handles.
type TransitionError struct {
	Err       error
	Transport Transport
	Line      ControlLine
	Delay     Delay
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("hc12: regime transition failed: %v", e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
