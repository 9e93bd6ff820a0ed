package epicycle

import (
	"sync/atomic"

	"github.com/joeydtaylor/epicycle/pkg/internal/reconstructor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// CreatePoints returns the epicycle chain at t flattened to x0, y0, x1, y1, ...
// The buffer holds 2·(Len()+1) values and starts at the origin; the last pair
// is the traced position. t is unrestricted, the chain repeats every unit.
func (rc *RotatingCircles) CreatePoints(t float64) []float64 {
	return reconstructor.Flatten(rc.Points(t))
}

// Points returns the epicycle chain at t, origin first.
func (rc *RotatingCircles) Points(t float64) []types.Point {
	points := reconstructor.Evaluate(rc.circles, t)
	if atomic.LoadInt32(&rc.sensorCount) > 0 {
		rc.notifyEvaluate(t)
	}
	return points
}

// Trace samples the traced position at steps evenly spaced times over one period.
func (rc *RotatingCircles) Trace(steps int) []types.Point {
	return reconstructor.Trace(rc.circles, steps)
}

// Circles returns a copy of the circle list in evaluation order.
func (rc *RotatingCircles) Circles() []types.RotatingCircle {
	return utils.Clone(rc.circles)
}

// Len returns the number of circles, which equals the number of input points.
func (rc *RotatingCircles) Len() int {
	return len(rc.circles)
}

func (rc *RotatingCircles) Spectrum() types.Spectrum {
	return rc.spectrum
}
