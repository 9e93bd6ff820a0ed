package types

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// RotatingCircle is one harmonic of a decomposed path: a vector of length
// Amplitude that starts at angle Phase and turns Frequency times per period.
type RotatingCircle struct {
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
	Frequency int     `json:"frequency"`
}

// At returns the circle's contribution at time t.
func (c RotatingCircle) At(t float64) Point {
	angle := float64(c.Frequency)*t*TwoPi + c.Phase
	s, co := math.Sincos(angle)
	return Point{X: c.Amplitude * co, Y: c.Amplitude * s}
}

// Spectrum summarises the energy distribution of a circle list.
type Spectrum struct {
	Circles           int     // Number of circles analysed.
	TotalEnergy       float64 // Sum of squared amplitudes.
	Offset            Point   // Contribution of the frequency 0 circle (the path's mean).
	DominantFrequency int     // Frequency of the largest non-DC circle, -1 if none.
	DominantAmplitude float64 // Amplitude of that circle.
	EnergyCutoff      int     // Circles needed, largest first, to hold 99% of the energy.
}
