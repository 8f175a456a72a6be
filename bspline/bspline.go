// Package bspline evaluates uniform cubic B-spline curves through timed 3D
// control points.
/*

A curve is defined by n >= 2 control points and n strictly increasing knot
times. Evaluation at a time t locates the containing knot interval, forms
the local parameter u in [0,1], blends the four control points framing the
interval with the uniform cubic B-spline basis, and returns the resulting
point. At the two boundary segments the missing outer neighbors are
replaced by virtual points, reflecting the adjacent control point through
the end point, so callers only ever supply the real points.

The primary source for the basis coefficients is:

   An Introduction to Splines for Use in Computer Graphics
   and Geometric Modeling -- Bartels, Beatty, Barsky
   Morgan Kaufmann 1987, chapter 4

The curve approximates its control points rather than interpolating them;
for interpolation through the points see the sibling package hermite.
*/
package bspline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/splines"
)

// tracer writes to trace with key 'splines'
func tracer() tracing.Trace {
	return tracing.Select("splines")
}

// basis is the uniform cubic B-spline basis matrix, scaled by 6. Row k
// holds the coefficients contributed by the monomial u^(3-k); column j
// belongs to the blending weight of window point j. Shared by all curves.
var basis = [4][4]float64{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 0, 3, 0},
	{1, 4, 1, 0},
}

// Curve is a uniform cubic B-spline over timed control points. Times and
// points are immutable after construction; the only mutable state is the
// cached knot interval of the previous query, which affects search cost but
// never results. A Curve is therefore not safe for concurrent evaluation;
// see splines.Spline.
type Curve struct {
	times  []float64
	points []splines.Point
	hint   int // knot interval of the previous query
}

var _ splines.Spline = &Curve{}

// New creates a B-spline curve from parallel knot times and control points.
// Both slices are copied. It fails with splines.ErrMissingArgument,
// splines.ErrInvalidLength, splines.ErrLengthMismatch or
// splines.ErrTimesNotOrdered for malformed input.
func New(times []float64, points []splines.Point) (*Curve, error) {
	if err := splines.CheckSeries(times, points); err != nil {
		return nil, err
	}
	c := &Curve{
		times:  append([]float64(nil), times...),
		points: append([]splines.Point(nil), points...),
	}
	tracer().Debugf("new B-spline curve with %d control points", len(points))
	return c, nil
}

// MustNew is a compatibility helper which panics on validation errors.
func MustNew(times []float64, points []splines.Point) *Curve {
	c, err := New(times, points)
	if err != nil {
		panic(err)
	}
	return c
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.points)
}

// Domain returns the time range the curve is defined on.
func (c *Curve) Domain() (float64, float64) {
	return c.times[0], c.times[len(c.times)-1]
}

// Ref returns a shallow copy of the curve with its own interval cache,
// sharing the immutable times and points.
func (c *Curve) Ref() splines.Spline {
	cc := *c
	return &cc
}

// At evaluates the curve at time t. t must lie within Domain(); violation
// fails with splines.ErrOutOfRange. Storing the found knot interval as the
// next search hint is the only mutation performed.
func (c *Curve) At(t float64) (splines.Point, error) {
	i, err := splines.FindInterval(t, c.hint, c.times)
	if err != nil {
		return splines.Point{}, err
	}
	c.hint = i
	u := (t - c.times[i]) / (c.times[i+1] - c.times[i])
	w0, w1, w2, w3 := weights(u)
	p0, p1, p2, p3 := c.window(i)
	pt := p0.Scaled(w0).
		Plus(p1.Scaled(w1)).
		Plus(p2.Scaled(w2)).
		Plus(p3.Scaled(w3))
	return pt, nil
}

// weights maps the monomial vector (u³,u²,u,1) through the basis matrix to
// the four blending weights. The weights sum to 1 for all u in [0,1].
func weights(u float64) (float64, float64, float64, float64) {
	m := [4]float64{u * u * u, u * u, u, 1}
	var w [4]float64
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			w[j] += m[k] * basis[k][j]
		}
		w[j] /= 6
	}
	return w[0], w[1], w[2], w[3]
}

// window selects the four control points framing knot interval i. The two
// boundary intervals have no outer neighbor; a virtual point is synthesized
// by reflecting the inner neighbor through the end point. With exactly two
// control points the single interval is first and last at once and gets a
// virtual point on either side.
func (c *Curve) window(i int) (splines.Point, splines.Point, splines.Point, splines.Point) {
	pts, last := c.points, len(c.points)-2
	switch {
	case i == 0 && i == last:
		return reflected(pts[0], pts[1]), pts[0], pts[1], reflected(pts[1], pts[0])
	case i == 0:
		return reflected(pts[0], pts[1]), pts[0], pts[1], pts[2]
	case i == last:
		return pts[i-1], pts[i], pts[i+1], reflected(pts[i+1], pts[i])
	default:
		return pts[i-1], pts[i], pts[i+1], pts[i+2]
	}
}

// reflected synthesizes the virtual boundary point: the linear reflection of
// the inner neighbor through the end point.
func reflected(end, inner splines.Point) splines.Point {
	return end.Plus(end.Minus(inner))
}
