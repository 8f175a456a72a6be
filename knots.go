package splines

import (
	"fmt"
)

// FindInterval locates the knot interval containing time t within a strictly
// increasing knot sequence. It returns the largest index i <= len(times)-2
// with times[i] <= t, so i+1 is always a valid index.
//
// hint is the interval returned by a previous query (any value is safe, it
// is clamped internally). Successive queries tend to hit the same or an
// adjacent interval, so the hinted neighborhood is checked before falling
// back to binary search. FindInterval is pure: the result depends on t and
// times only, never on hint; callers keep the returned index as next hint.
//
// t outside [times[0], times[last]] fails with ErrOutOfRange.
func FindInterval(t float64, hint int, times []float64) (int, error) {
	last := len(times) - 2
	// Negated form so that a NaN query fails the guard as well.
	if !(t >= times[0] && t <= times[last+1]) {
		return 0, fmt.Errorf("%w: %g not in [%g,%g]", ErrOutOfRange, t, times[0], times[last+1])
	}
	if hint < 0 {
		hint = 0
	} else if hint > last {
		hint = last
	}
	// Temporal locality: the hinted interval or a neighbor usually matches.
	for i := max(0, hint-1); i <= min(last, hint+1); i++ {
		if containsAsLargest(t, i, last, times) {
			return i, nil
		}
	}
	lo, hi := 0, last
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if times[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// containsAsLargest reports whether i is the largest valid interval index
// with times[i] <= t.
func containsAsLargest(t float64, i, last int, times []float64) bool {
	if times[i] > t {
		return false
	}
	return i == last || t < times[i+1]
}

// IsStrictlyIncreasing checks the knot sequence precondition shared by all
// curve constructors.
func IsStrictlyIncreasing(times []float64) bool {
	for i := 0; i < len(times)-1; i++ {
		if times[i+1] <= times[i] {
			return false
		}
	}
	return true
}
