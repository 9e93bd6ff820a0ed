package types

import "time"

// Metric names tracked by a Meter.
const (
	MetricTransformCount         = "transform_count"
	MetricParallelTransformCount = "parallel_transform_count"
	MetricSamplesTransformed     = "samples_transformed_count"
	MetricPeakSamples            = "peak_samples"
	MetricTransformNanos         = "transform_nanos"
	MetricConstructCount         = "construct_count"
	MetricEvaluateCount          = "evaluate_count"
)

// Meter accumulates counters fed by sensor callbacks.
type Meter interface {
	IncrementCount(metricName string)
	AddToCount(metricName string, delta uint64)
	SetMetricPeak(metricName string, value uint64)
	GetMetricCount(metricName string) uint64
	GetMetricNames() []string
	RecordTransform(report TransformReport)
	Snapshot() MeterSnapshot
	ReportData()
	ResetMetrics()

	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}

// MeterSnapshot is a point in time view of a Meter and the host it runs on.
type MeterSnapshot struct {
	Elapsed            time.Duration
	Transforms         uint64
	ParallelTransforms uint64
	SamplesTransformed uint64
	PeakSamples        uint64
	TransformTime      time.Duration
	BinsPerSecond      float64 // Coefficients produced per second of transform time.
	Constructs         uint64
	Evaluations        uint64
	Goroutines         int
	CPUPercent         float64 // -1 when host stats are disabled or unavailable.
	RAMPercent         float64 // -1 when host stats are disabled or unavailable.
}
