package vmath

// FastRand is a xorshift64 generator (13, 17, 5)
// Not safe for concurrent use; each Display owns one instance
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; a zero seed is remapped to 1 since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next advances the state and returns the raw 64-bit output
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); 0 when n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [min, max)
func (r *FastRand) Range(min, max float64) float64 {
	return (max-min)*r.Float64() + min
}
