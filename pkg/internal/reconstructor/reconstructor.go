// Package reconstructor chains rotating circles tip to tail to trace a path.
package reconstructor

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// Evaluate returns the chain of circle centres at time t: the origin, then the
// running sum of each circle's contribution in list order. The result always
// holds len(circles)+1 points and its last point is the traced position.
//
// t is not clamped; a NaN t propagates into every point after the origin.
func Evaluate(circles []types.RotatingCircle, t float64) []types.Point {
	points := make([]types.Point, len(circles)+1)

	var x, y float64
	for i, c := range circles {
		p := c.At(t)
		x += p.X
		y += p.Y
		points[i+1] = types.Point{X: x, Y: y}
	}
	return points
}

// Flatten interleaves points as x0, y0, x1, y1, ...
func Flatten(points []types.Point) []float64 {
	out := make([]float64, 0, 2*len(points))
	for _, p := range points {
		out = append(out, p.X, p.Y)
	}
	return out
}

// Trace samples the traced position at steps evenly spaced times in [0, 1).
func Trace(circles []types.RotatingCircle, steps int) []types.Point {
	if steps <= 0 {
		return []types.Point{}
	}

	out := make([]types.Point, steps)
	for i := range out {
		out[i] = Tip(circles, float64(i)/float64(steps))
	}
	return out
}

// Tip returns only the traced position at time t.
func Tip(circles []types.RotatingCircle, t float64) types.Point {
	var x, y float64
	for _, c := range circles {
		p := c.At(t)
		x += p.X
		y += p.Y
	}
	return types.Point{X: x, Y: y}
}
