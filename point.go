package splines

import (
	"fmt"
	"math"
)

// === Point Data Type =======================================================

// Point is a 3-component vector / 3D-point.
type Point struct {
	X, Y, Z float64
}

// Origin represents the frequently used constant (0,0,0).
var Origin = P(0, 0, 0)

// P is a quick notation for constructing a point from floats.
func P(x, y, z float64) Point {
	return Point{x, y, z}
}

// Pretty Stringer for simple points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g,%g)", p.X, p.Y, p.Z)
}

// F is a quick notation for getting float values from a point.
func (p Point) F() (float64, float64, float64) {
	return p.X, p.Y, p.Z
}

// Plus returns the componentwise sum p + q.
func (p Point) Plus(q Point) Point {
	return P(p.X+q.X, p.Y+q.Y, p.Z+q.Z)
}

// Minus returns the componentwise difference p - q.
func (p Point) Minus(q Point) Point {
	return P(p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return P(p.X*a, p.Y*a, p.Z*a)
}

// Zap rounds all components to Epsilon.
func (p Point) Zap() Point {
	return P(Zap(p.X), Zap(p.Y), Zap(p.Z))
}

// IsOrigin is a predicate: is this point origin?
func (p Point) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two points.
func (p Point) Equal(q Point) bool {
	q = q.Zap()
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// IsFinite is a predicate: are all components free of NaN/Inf?
func (p Point) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Lerp interpolates linearly between p and q. f = 0 yields p, f = 1 yields q.
func Lerp(p, q Point, f float64) Point {
	return p.Scaled(1 - f).Plus(q.Scaled(f))
}
