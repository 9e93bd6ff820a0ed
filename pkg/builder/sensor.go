package builder

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/sensor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type Sensor = types.Sensor

type SensorOption = types.Option[types.Sensor]

// NewSensor creates a sensor for engine and handle callbacks.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithOnTransformStartFunc registers a callback for the start of each transform.
func SensorWithOnTransformStartFunc(callback ...func(c ComponentMetadata, samples int)) types.Option[types.Sensor] {
	return sensor.WithOnTransformStartFunc(callback...)
}

// SensorWithOnTransformCompleteFunc registers a callback for finished transforms.
func SensorWithOnTransformCompleteFunc(callback ...func(c ComponentMetadata, report TransformReport)) types.Option[types.Sensor] {
	return sensor.WithOnTransformCompleteFunc(callback...)
}

// SensorWithOnConstructFunc registers a callback for constructed circle lists.
func SensorWithOnConstructFunc(callback ...func(c ComponentMetadata, circles int)) types.Option[types.Sensor] {
	return sensor.WithOnConstructFunc(callback...)
}

// SensorWithOnEvaluateFunc registers a callback for each reconstruction.
func SensorWithOnEvaluateFunc(callback ...func(c ComponentMetadata, t float64)) types.Option[types.Sensor] {
	return sensor.WithOnEvaluateFunc(callback...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}
