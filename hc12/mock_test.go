package hc12_test

import (
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/fieldlink/hc12ctl/hc12"
)

// ExchangeBuilder accumulates the expected mock calls for a sequence of
// AT command exchanges, in the exact order the session performs them:
// drain, write, settle, poll, read.
type ExchangeBuilder struct {
	transport *hc12.MockTransport
	delay     *hc12.MockDelay
	calls     []any
}

func NewExchange(transport *hc12.MockTransport, delay *hc12.MockDelay) *ExchangeBuilder {
	return &ExchangeBuilder{
		transport: transport,
		delay:     delay,
		calls:     []any{},
	}
}

// Command expects one full successful-read exchange: the exact command
// bytes written, the settle wait, a positive readiness poll, and the
// given response served in a single read.
func (b *ExchangeBuilder) Command(cmd, response string) *ExchangeBuilder {
	b.calls = append(b.calls,
		b.transport.EXPECT().Drain().Return(nil),
		b.transport.EXPECT().Write([]byte(cmd)).Return(len(cmd), nil),
		b.delay.EXPECT().Sleep(100*time.Millisecond),
		b.transport.EXPECT().ReadReady().Return(true, nil),
		b.transport.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
			return copy(p, response), nil
		}),
	)
	return b
}

// Silent expects an exchange where the module never answers: the poll
// reports not ready and no read is attempted.
func (b *ExchangeBuilder) Silent(cmd string) *ExchangeBuilder {
	b.calls = append(b.calls,
		b.transport.EXPECT().Drain().Return(nil),
		b.transport.EXPECT().Write([]byte(cmd)).Return(len(cmd), nil),
		b.delay.EXPECT().Sleep(100*time.Millisecond),
		b.transport.EXPECT().ReadReady().Return(false, nil),
	)
	return b
}

// EnterCommand expects the transparent-to-command transition: SET line
// low, then the 100 ms settle.
func (b *ExchangeBuilder) EnterCommand(line *hc12.MockControlLine) *ExchangeBuilder {
	b.calls = append(b.calls,
		line.EXPECT().SetLow().Return(nil),
		b.delay.EXPECT().Sleep(100*time.Millisecond),
	)
	return b
}

// ExitCommand expects the command-to-transparent transition: SET line
// high, then the 80 ms settle.
func (b *ExchangeBuilder) ExitCommand(line *hc12.MockControlLine) *ExchangeBuilder {
	b.calls = append(b.calls,
		line.EXPECT().SetHigh().Return(nil),
		b.delay.EXPECT().Sleep(80*time.Millisecond),
	)
	return b
}

func (b *ExchangeBuilder) Build() []any {
	return b.calls
}
