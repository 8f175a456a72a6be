package splines

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if !Is1(1.000000008) {
		t.Errorf("Expected 1.000000008 to mean 1, does not")
	}
	if Is1(1.1) {
		t.Errorf("Expected 1.1 not to mean 1, does")
	}
	if r := Round(0.30000000004); !Is0(r - 0.3) {
		t.Errorf("Expected rounding to ε to yield 0.3, is %g", r)
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2, 1)
	q := P(-3, -2, -1)
	r := p.Plus(q)
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0,0), is %v", r)
	}
	if !p.Minus(p).IsOrigin() {
		t.Errorf("Expected p - p to be (0,0,0), is not")
	}
	if !p.Scaled(2).Equal(P(6, 4, 2)) {
		t.Errorf("Expected 2p to be (6,4,2), is %v", p.Scaled(2))
	}
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p, q := P(0, 0, 0), P(2, 4, 6)
	if !Lerp(p, q, 0).Equal(p) {
		t.Errorf("Expected lerp at 0 to be p, is not")
	}
	if !Lerp(p, q, 1).Equal(q) {
		t.Errorf("Expected lerp at 1 to be q, is not")
	}
	if mid := Lerp(p, q, 0.5); !mid.Equal(P(1, 2, 3)) {
		t.Errorf("Expected lerp at 0.5 to be (1,2,3), is %v", mid)
	}
}

func TestClampAndWrapTime(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	times := []float64{1, 2, 4}
	if got := ClampTime(0.5, times); got != 1 {
		t.Errorf("Expected clamp below domain to be 1, is %g", got)
	}
	if got := ClampTime(7, times); got != 4 {
		t.Errorf("Expected clamp above domain to be 4, is %g", got)
	}
	if got := ClampTime(3, times); got != 3 {
		t.Errorf("Expected clamp inside domain to be 3, is %g", got)
	}
	if got := WrapTime(5, times); !Is0(got - 2) {
		t.Errorf("Expected wrap of 5 to be 2, is %g", got)
	}
	if got := WrapTime(0, times); !Is0(got - 3) {
		t.Errorf("Expected wrap of 0 to be 3, is %g", got)
	}
}
