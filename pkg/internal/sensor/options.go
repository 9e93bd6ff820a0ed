package sensor

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// WithLogger adds loggers to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithOnTransformStartFunc registers callbacks for the start of a transform.
func WithOnTransformStartFunc(callback ...func(c types.ComponentMetadata, samples int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnTransformStart(callback...)
	}
}

// WithOnTransformCompleteFunc registers callbacks for finished transforms.
func WithOnTransformCompleteFunc(callback ...func(c types.ComponentMetadata, report types.TransformReport)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnTransformComplete(callback...)
	}
}

// WithOnConstructFunc registers callbacks for constructed circle lists.
func WithOnConstructFunc(callback ...func(c types.ComponentMetadata, circles int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnConstruct(callback...)
	}
}

// WithOnEvaluateFunc registers callbacks for every reconstruction.
func WithOnEvaluateFunc(callback ...func(c types.ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnEvaluate(callback...)
	}
}

// WithComponentMetadata sets the sensor's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}

// WithMeter feeds transform, construct and evaluate events into meters.
func WithMeter(meter ...types.Meter) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		for _, m := range meter {
			if m == nil {
				continue
			}
			s.RegisterOnTransformComplete(func(_ types.ComponentMetadata, report types.TransformReport) {
				m.RecordTransform(report)
			})
			s.RegisterOnConstruct(func(types.ComponentMetadata, int) {
				m.IncrementCount(types.MetricConstructCount)
			})
			s.RegisterOnEvaluate(func(types.ComponentMetadata, float64) {
				m.IncrementCount(types.MetricEvaluateCount)
			})
		}
	}
}
