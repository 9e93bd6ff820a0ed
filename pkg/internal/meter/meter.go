// Package meter counts transforms, constructions and reconstructions as they
// are reported through sensors, and samples host CPU and memory alongside.
package meter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

var metricNames = []string{
	types.MetricTransformCount,
	types.MetricParallelTransformCount,
	types.MetricSamplesTransformed,
	types.MetricPeakSamples,
	types.MetricTransformNanos,
	types.MetricConstructCount,
	types.MetricEvaluateCount,
}

type Meter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	// counts is fixed after construction; values are updated atomically.
	counts    map[string]*uint64
	startTime time.Time
	startLock sync.Mutex
	hostStats bool

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
}

func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:    make(map[string]*uint64, len(metricNames)),
		startTime: time.Now(),
		hostStats: true,
	}
	for _, name := range metricNames {
		m.counts[name] = new(uint64)
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// SetHostStats toggles CPU and memory sampling in Snapshot.
func (m *Meter) SetHostStats(enabled bool) {
	m.hostStats = enabled
}

func (m *Meter) IncrementCount(metricName string) {
	m.AddToCount(metricName, 1)
}

// AddToCount adds delta to a metric. Unknown names are ignored.
func (m *Meter) AddToCount(metricName string, delta uint64) {
	if counter, ok := m.counts[metricName]; ok {
		atomic.AddUint64(counter, delta)
	}
}

// SetMetricPeak raises a metric to value if value is larger.
func (m *Meter) SetMetricPeak(metricName string, value uint64) {
	counter, ok := m.counts[metricName]
	if !ok {
		return
	}
	for {
		current := atomic.LoadUint64(counter)
		if value <= current || atomic.CompareAndSwapUint64(counter, current, value) {
			return
		}
	}
}

func (m *Meter) GetMetricCount(metricName string) uint64 {
	if counter, ok := m.counts[metricName]; ok {
		return atomic.LoadUint64(counter)
	}
	return 0
}

func (m *Meter) GetMetricNames() []string {
	return utils.Clone(metricNames)
}

// RecordTransform folds one transform report into the counters.
func (m *Meter) RecordTransform(report types.TransformReport) {
	m.IncrementCount(types.MetricTransformCount)
	if report.Strategy == types.StrategyParallel {
		m.IncrementCount(types.MetricParallelTransformCount)
	}
	m.AddToCount(types.MetricSamplesTransformed, uint64(report.Samples))
	m.SetMetricPeak(types.MetricPeakSamples, uint64(report.Samples))
	if report.Duration > 0 {
		m.AddToCount(types.MetricTransformNanos, uint64(report.Duration))
	}
}

// ResetMetrics zeroes every counter and restarts the elapsed clock.
func (m *Meter) ResetMetrics() {
	for _, counter := range m.counts {
		atomic.StoreUint64(counter, 0)
	}
	m.startLock.Lock()
	m.startTime = time.Now()
	m.startLock.Unlock()
}
