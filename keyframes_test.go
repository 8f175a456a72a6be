package splines

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestKeyframesSorted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := NewKeyframes().
		Sample(2, P(2, 0, 0)).
		Sample(0, P(0, 0, 0)).
		Sample(1, P(1, 0, 0))
	assert.Equal(t, 3, k.N())
	times, points := k.Series()
	assert.Equal(t, []float64{0, 1, 2}, times)
	assert.Equal(t, []Point{P(0, 0, 0), P(1, 0, 0), P(2, 0, 0)}, points)
}

func TestKeyframesDuplicateTimeReplaces(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := NewKeyframes().
		Sample(0, P(0, 0, 0)).
		Sample(1, P(1, 0, 0)).
		Sample(1, P(5, 5, 5))
	assert.Equal(t, 2, k.N())
	times, points := k.Series()
	assert.Equal(t, []float64{0, 1}, times)
	assert.Equal(t, P(5, 5, 5), points[1])
}

func TestKeyframesSeriesFeedsCheckSeries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	times, points := NewKeyframes().
		Sample(3, P(3, 1, 0)).
		Sample(0, P(0, 0, 0)).
		Sample(1, P(1, 0, 0)).
		Sample(2, P(2, 1, 0)).
		Series()
	assert.NoError(t, CheckSeries(times, points))
}
