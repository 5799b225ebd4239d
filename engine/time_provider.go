package engine

import "time"

// TimeProvider is the clock every time-dependent component samples
// Production code uses MonotonicTimeProvider; tests drive MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Seconds converts t to fractional seconds since the Unix epoch
// Trajectory and board timers store time in this form
func Seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// NowSeconds samples p and returns fractional epoch seconds
func NowSeconds(p TimeProvider) float64 {
	return Seconds(p.Now())
}
