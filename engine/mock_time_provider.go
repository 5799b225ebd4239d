package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for deterministic frame tests
// Time only moves through SetTime and Advance; safe for concurrent use
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds past base
}

// NewMockTimeProvider starts the mock at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: startTime}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may be earlier than the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

// Advance moves the mock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceSeconds moves the mock forward by fractional seconds, matching the
// float64 timestamps trajectories use
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}

// Elapsed returns how far the mock has moved from its start
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}
