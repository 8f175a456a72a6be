package splines

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Keyframes collects timed point samples and keeps them sorted by time,
// regardless of insertion order. It produces the parallel times/points
// sequences the curve constructors expect.
//
// Sampling the same time twice replaces the earlier point.
type Keyframes struct {
	samples *treemap.Map // time -> Point, sorted by time
}

// NewKeyframes creates an empty keyframe collector, to be filled by
// subsequent Sample calls:
//
//	k := NewKeyframes().Sample(0, P(0,0,0)).Sample(2, P(3,1,0)).Sample(1, P(1,0,0))
//	times, points := k.Series()
func NewKeyframes() *Keyframes {
	return &Keyframes{
		samples: treemap.NewWith(utils.Float64Comparator),
	}
}

// Sample records point p at time t. Part of builder functionality.
func (k *Keyframes) Sample(t float64, p Point) *Keyframes {
	k.samples.Put(t, p)
	return k
}

// N returns the number of distinct sample times.
func (k *Keyframes) N() int {
	return k.samples.Size()
}

// Series returns the collected samples as parallel slices, sorted by time.
func (k *Keyframes) Series() ([]float64, []Point) {
	times := make([]float64, 0, k.samples.Size())
	points := make([]Point, 0, k.samples.Size())
	it := k.samples.Iterator()
	for it.Next() {
		times = append(times, it.Key().(float64))
		points = append(points, it.Value().(Point))
	}
	tracer().Debugf("keyframe series with %d samples", len(times))
	return times, points
}
