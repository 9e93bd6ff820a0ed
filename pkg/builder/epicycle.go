package builder

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/epicycle"
	"github.com/joeydtaylor/epicycle/pkg/internal/extractor"
	"github.com/joeydtaylor/epicycle/pkg/internal/reconstructor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type RotatingCircles = types.RotatingCircles

type EpicycleOption = types.Option[types.RotatingCircles]

// Construct decomposes a closed path into rotating circles.
func Construct(points []Point, options ...types.Option[types.RotatingCircles]) types.RotatingCircles {
	return epicycle.Construct(points, options...)
}

// EpicycleWithEngine transforms with e instead of a default engine.
func EpicycleWithEngine(e types.Engine) types.Option[types.RotatingCircles] {
	return epicycle.WithEngine(e)
}

// EpicycleWithEngineOptions configures the engine before the transform.
func EpicycleWithEngineOptions(options ...types.Option[types.Engine]) types.Option[types.RotatingCircles] {
	return epicycle.WithEngineOptions(options...)
}

// EpicycleWithAmplitudeOrder evaluates circles largest first.
func EpicycleWithAmplitudeOrder() types.Option[types.RotatingCircles] {
	return epicycle.WithAmplitudeOrder()
}

// EpicycleWithLogger attaches loggers to the handle and its default engine.
func EpicycleWithLogger(l ...types.Logger) types.Option[types.RotatingCircles] {
	return epicycle.WithLogger(l...)
}

// EpicycleWithSensor attaches sensors to the handle and its default engine.
func EpicycleWithSensor(s ...types.Sensor) types.Option[types.RotatingCircles] {
	return epicycle.WithSensor(s...)
}

// EpicycleWithComponentMetadata sets the handle's name and ID.
func EpicycleWithComponentMetadata(name string, id string) types.Option[types.RotatingCircles] {
	return epicycle.WithComponentMetadata(name, id)
}

// ExtractCircles maps DFT coefficients to rotating circles.
func ExtractCircles(coeffs []Complex) []RotatingCircle {
	return extractor.Extract(coeffs)
}

// SortByAmplitude returns circles ordered largest first.
func SortByAmplitude(circles []RotatingCircle) []RotatingCircle {
	return extractor.SortByAmplitude(circles)
}

// AnalyzeCircles summarises the energy of a circle list.
func AnalyzeCircles(circles []RotatingCircle) Spectrum {
	return extractor.Analyze(circles)
}

// EvaluateCircles returns the epicycle chain at t, origin first.
func EvaluateCircles(circles []RotatingCircle, t float64) []Point {
	return reconstructor.Evaluate(circles, t)
}

// FlattenPoints interleaves points as x0, y0, x1, y1, ...
func FlattenPoints(points []Point) []float64 {
	return reconstructor.Flatten(points)
}
