package vmath

import "math"

// lowestGravity is the weakest downward pull a trajectory can roll (-9.8 + 1)
const lowestGravity = -8.8

// SkewParabola remaps num, a sample inside [low, high], through 1-(s-1)^2 where s is
// the sample's relative position in the range. The curve is concave, so samples are
// pushed toward high; the expected value of a uniform input is low + 2/3 of the range.
// A degenerate range returns low.
func SkewParabola(num, low, high float64) float64 {
	width := high - low
	if width == 0 {
		return low
	}
	t := (num-low)/width - 1
	return width*(1-t*t) + low
}

// DefaultVelocity is the largest launch velocity whose apex stays inside height rows,
// assuming the weakest gravity a trajectory can get
func DefaultVelocity(height int) int {
	if height <= 0 {
		return 0
	}
	return int(math.Floor(math.Sqrt(-2 * lowestGravity * float64(height))))
}
