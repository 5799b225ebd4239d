// Package status publishes animation counters from the frame loop to readers
// on other goroutines (the screen status line and the debug log).
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the frame loop
const (
	KeyFPS          = "fps"
	KeyTrajectories = "balls"
	KeyCapacity     = "capacity"
	KeyFrames       = "frames"
	KeyBounces      = "bounces"
	KeyFrameBytes   = "frame_bytes"
	KeyPaused       = "paused"
	KeyFrameMillis  = "frame_ms"
)

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Line renders every metric as "key value" pairs
// Ints, then floats with two decimals, then set bools in upper case; each
// group keeps registration order
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s %.2f", key, v.Get()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		if v.Load() {
			parts = append(parts, strings.ToUpper(key))
		}
	})
	return strings.Join(parts, "  ")
}
