package builder

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/meter"
	"github.com/joeydtaylor/epicycle/pkg/internal/sensor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type Meter = types.Meter

type MeterSnapshot = types.MeterSnapshot

// NewMeter creates a meter; feed it through SensorWithMeter.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger attaches loggers that receive ReportData output.
func MeterWithLogger(l ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(l...)
}

// MeterWithComponentMetadata sets the meter's name and ID.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithoutHostStats skips CPU and memory sampling.
func MeterWithoutHostStats() types.Option[types.Meter] {
	return meter.WithoutHostStats()
}

// SensorWithMeter feeds sensor events into meters.
func SensorWithMeter(m ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(m...)
}
