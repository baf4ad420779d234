package hc12

import "time"

//go:generate go tool mockgen -source=delay.go -destination=mock_delay.go -package=hc12

// Delay is a blocking millisecond-granularity wait. The module's settle
// windows come from its documented response latency, so the driver
// treats sleeping as infallible. A separate interface exists so tests
// can observe the waits instead of serving them.
type Delay interface {
	Sleep(d time.Duration)
}

// SleepDelay serves delays with time.Sleep.
type SleepDelay struct{}

func (SleepDelay) Sleep(d time.Duration) {
	time.Sleep(d)
}
