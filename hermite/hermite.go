// Package hermite evaluates cubic Hermite splines through timed 3D points,
// including Catmull-Rom splines with tangents derived from the points.
//
// Unlike the approximating B-spline of the sibling package bspline, a
// Hermite curve interpolates: it passes through every control point at its
// knot time, with the supplied tangent there.
package hermite

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// Curve is a cubic Hermite spline over timed control points with one
// tangent per point. Times, points and tangents are immutable after
// construction; the cached knot interval of the previous query is the only
// mutable state, so a Curve is not safe for concurrent evaluation.
type Curve struct {
	times    []float64
	points   []splines.Point
	tangents []splines.Point
	hint     int
}

var _ splines.Spline = &Curve{}

// New creates a Hermite curve from parallel knot times, control points and
// tangents. All slices are copied. Beyond the shared input contract (see
// splines.CheckSeries) it fails with splines.ErrLengthMismatch when the
// tangent count disagrees with the point count.
func New(times []float64, points, tangents []splines.Point) (*Curve, error) {
	if err := splines.CheckSeries(times, points); err != nil {
		return nil, err
	}
	if tangents == nil {
		return nil, splines.ErrMissingArgument
	}
	if len(tangents) != len(points) {
		return nil, splines.ErrLengthMismatch
	}
	c := &Curve{
		times:    append([]float64(nil), times...),
		points:   append([]splines.Point(nil), points...),
		tangents: append([]splines.Point(nil), tangents...),
	}
	tracer().Debugf("new Hermite curve with %d control points", len(points))
	return c, nil
}

// CatmullRom creates a Hermite curve with Catmull-Rom tangents derived from
// the points: the centered finite difference for interior points and the
// one-sided chord at the two ends.
func CatmullRom(times []float64, points []splines.Point) (*Curve, error) {
	if err := splines.CheckSeries(times, points); err != nil {
		return nil, err
	}
	n := len(points)
	tangents := make([]splines.Point, n)
	tangents[0] = points[1].Minus(points[0]).Scaled(1 / (times[1] - times[0]))
	tangents[n-1] = points[n-1].Minus(points[n-2]).Scaled(1 / (times[n-1] - times[n-2]))
	for i := 1; i < n-1; i++ {
		tangents[i] = points[i+1].Minus(points[i-1]).Scaled(1 / (times[i+1] - times[i-1]))
	}
	return New(times, points, tangents)
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
	dt := c.times[i+1] - c.times[i]
	u := (t - c.times[i]) / dt
	h00, h10, h01, h11 := hermiteWeights(u)
	// Tangents are per unit time; scale by the interval length.
	pt := c.points[i].Scaled(h00).
		Plus(c.tangents[i].Scaled(h10 * dt)).
		Plus(c.points[i+1].Scaled(h01)).
		Plus(c.tangents[i+1].Scaled(h11 * dt))
	return pt, nil
}

// hermiteWeights are the cubic Hermite basis polynomials at u.
func hermiteWeights(u float64) (float64, float64, float64, float64) {
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2
	return h00, h10, h01, h11
}
