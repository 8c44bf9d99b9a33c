package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Approximately reports whether a and b differ by less than a small epsilon
// scaled to their magnitude.
func Approximately(a, b float64) bool {
	eps := 1e-6 * math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) < eps
}
