package epicycle

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// WithEngine transforms with e instead of a default engine.
func WithEngine(e types.Engine) types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.ConnectEngine(e)
	}
}

// WithEngineOptions configures the engine, default or connected, before the transform.
func WithEngineOptions(options ...types.Option[types.Engine]) types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.ConfigureEngine(options...)
	}
}

// WithAmplitudeOrder evaluates circles largest first. The traced point is the
// same either way; only the intermediate chain changes.
func WithAmplitudeOrder() types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.SetAmplitudeOrder(true)
	}
}

// WithLogger attaches loggers to the handle.
func WithLogger(l ...types.Logger) types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.ConnectLogger(l...)
	}
}

// WithSensor attaches sensors to the handle.
func WithSensor(s ...types.Sensor) types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.ConnectSensor(s...)
	}
}

// WithComponentMetadata sets the handle's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.RotatingCircles] {
	return func(rc types.RotatingCircles) {
		rc.SetComponentMetadata(name, id)
	}
}
