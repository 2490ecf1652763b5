package extractor

import "time"

// Clock abstracts time observation and pacing so deadline and settle behavior
// are deterministic under test.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the production Clock backed by the monotonic system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
