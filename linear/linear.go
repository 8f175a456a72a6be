// Package linear evaluates piecewise-linear splines through timed 3D
// points. It shares the construction and evaluation contract of the sibling
// curve packages and serves as the trivial baseline of the curve family.
package linear

import (
	"github.com/npillmayer/splines"
)

// Curve is a piecewise-linear spline over timed control points. The cached
// knot interval of the previous query is the only mutable state, so a Curve
// is not safe for concurrent evaluation.
type Curve struct {
	times  []float64
	points []splines.Point
	hint   int
}

var _ splines.Spline = &Curve{}

// New creates a linear curve from parallel knot times and control points.
// Both slices are copied; see splines.CheckSeries for the input contract.
func New(times []float64, points []splines.Point) (*Curve, error) {
	if err := splines.CheckSeries(times, points); err != nil {
		return nil, err
	}
	return &Curve{
		times:  append([]float64(nil), times...),
		points: append([]splines.Point(nil), points...),
	}, nil
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.points)
}

// Domain returns the time range the curve is defined on.
func (c *Curve) Domain() (float64, float64) {
	return c.times[0], c.times[len(c.times)-1]
}

// Ref returns a shallow copy of the curve with its own interval cache.
func (c *Curve) Ref() splines.Spline {
	cc := *c
	return &cc
}

// At evaluates the curve at time t. t must lie within Domain(); violation
// fails with splines.ErrOutOfRange.
func (c *Curve) At(t float64) (splines.Point, error) {
	i, err := splines.FindInterval(t, c.hint, c.times)
	if err != nil {
		return splines.Point{}, err
	}
	c.hint = i
	u := (t - c.times[i]) / (c.times[i+1] - c.times[i])
	return splines.Lerp(c.points[i], c.points[i+1], u), nil
}
