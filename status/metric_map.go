package status

import (
	"sync"
)

// MetricMap holds named metrics of type T in registration order
// Lookups take a lock; the frame loop caches the returned pointer instead
type MetricMap[T any] struct {
	mu    sync.RWMutex
	index map[string]int
	keys  []string
	vals  []*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{index: make(map[string]int)}
}

// Get returns the metric for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	if i, ok := m.index[key]; ok {
		ptr := m.vals[i]
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.index[key]; ok {
		return m.vals[i]
	}
	ptr := new(T)
	m.index[key] = len(m.vals)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, ptr)
	return ptr
}

// Range visits metrics in the order they were first registered
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys, vals := m.keys, m.vals
	m.mu.RUnlock()

	for i, k := range keys {
		fn(k, vals[i])
	}
}
