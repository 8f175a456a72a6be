package splines

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingArgument indicates a nil times or points argument.
	ErrMissingArgument = errors.New("spline argument must not be nil")
	// ErrInvalidLength indicates a control point count insufficient for evaluation.
	ErrInvalidLength = errors.New("spline needs at least 2 control points")
	// ErrLengthMismatch indicates parallel input sequences of unequal length.
	ErrLengthMismatch = errors.New("spline input sequences differ in length")
	// ErrOutOfRange indicates a query time outside [times[0], times[last]].
	ErrOutOfRange = errors.New("time outside of spline domain")
	// ErrTimesNotOrdered indicates a time sequence which is not strictly increasing.
	ErrTimesNotOrdered = errors.New("spline times must be strictly increasing")
)

// Spline is a parametric curve over a closed time domain. All curve types of
// this module (B-spline, Hermite, Catmull-Rom, linear) implement it.
//
// Implementations cache the knot interval of the previous query as a search
// hint, so a single spline instance is not safe for concurrent evaluation.
// Use Ref to hand each goroutine a copy with its own cache.
type Spline interface {
	// At evaluates the curve at time t. t must lie within Domain().
	At(t float64) (Point, error)
	// Domain returns the time range [from, to] the curve is defined on.
	Domain() (float64, float64)
	// Ref returns a shallow copy with its own interval cache. The copy
	// shares the (immutable) control points and times.
	Ref() Spline
}

// CheckSeries validates the (times, points) input contract shared by all
// curve constructors: both present, at least 2 points, parallel lengths,
// strictly increasing times.
func CheckSeries(times []float64, points []Point) error {
	if times == nil || points == nil {
		return ErrMissingArgument
	}
	if len(points) < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, len(points))
	}
	if len(times) != len(points) {
		return fmt.Errorf("%w: %d times for %d points", ErrLengthMismatch, len(times), len(points))
	}
	if !IsStrictlyIncreasing(times) {
		return ErrTimesNotOrdered
	}
	return nil
}

// ClampTime clamps t to the domain of a knot sequence. Evaluation itself
// never clamps; callers opt in explicitly.
func ClampTime(t float64, times []float64) float64 {
	if t < times[0] {
		return times[0]
	}
	if last := times[len(times)-1]; t > last {
		return last
	}
	return t
}

// WrapTime maps t periodically into the domain of a knot sequence, for
// looping animations.
func WrapTime(t float64, times []float64) float64 {
	from, to := times[0], times[len(times)-1]
	span := to - from
	t = math.Mod(t-from, span)
	if t < 0 {
		t += span
	}
	return from + t
}
