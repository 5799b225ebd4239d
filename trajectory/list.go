package trajectory

// List is an insertion-ordered collection of trajectories; insertion order is draw order
// Trajectories are never removed individually
type List struct {
	items    []*Trajectory
	capacity int
}

// NewList creates an empty list holding at most capacity trajectories
// A capacity <= 0 leaves the list unbounded
func NewList(capacity int) *List {
	l := &List{capacity: capacity}
	if capacity > 0 {
		l.items = make([]*Trajectory, 0, capacity)
	}
	return l
}

// Push appends t at the tail; it is a no-op returning false once the list is full
func (l *List) Push(t *Trajectory) bool {
	if t == nil || l.Full() {
		return false
	}
	l.items = append(l.items, t)
	return true
}

// Len returns the number of trajectories held
func (l *List) Len() int {
	return len(l.items)
}

// Cap returns the configured capacity (<= 0 when unbounded)
func (l *List) Cap() int {
	return l.capacity
}

// Full reports whether another Push would be rejected
func (l *List) Full() bool {
	return l.capacity > 0 && len(l.items) >= l.capacity
}

// At returns the i-th trajectory in insertion order
func (l *List) At(i int) *Trajectory {
	return l.items[i]
}

// Each visits trajectories head to tail
func (l *List) Each(fn func(t *Trajectory)) {
	for _, t := range l.items {
		fn(t)
	}
}
