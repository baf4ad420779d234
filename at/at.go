// Package at renders HC-12 AT command strings and classifies the
// module's responses.
//
// The HC-12 speaks plain ASCII: every request is "AT+<code><value>\r\n"
// and a successful response contains the literal "OK", usually echoing
// the accepted value (e.g. "OK+B9600"). There are no unsolicited
// messages and no multi-line responses.
package at

import "bytes"

const (
	// CRLF terminates every request.
	CRLF = "\r\n"

	// OK marks a successful response. The match is case sensitive;
	// the module never answers "Ok".
	OK = "OK"

	// MaxLen bounds a rendered command. The longest legal request is
	// "AT+B115200\r\n" (12 bytes); 16 leaves headroom.
	MaxLen = 16

	// ResponseSize is the read buffer size for a single response.
	ResponseSize = 16
)

// Classify reports whether a raw response buffer indicates success.
// Success is the presence of "OK" anywhere in the received run; anything
// else, including an empty or truncated read, is failure.
func Classify(resp []byte) bool {
	return bytes.Contains(resp, []byte(OK))
}
