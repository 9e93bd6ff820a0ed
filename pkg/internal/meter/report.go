package meter

import (
	"runtime"
	"time"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Snapshot reads every counter and, when enabled, the host CPU and memory load.
func (m *Meter) Snapshot() types.MeterSnapshot {
	m.startLock.Lock()
	start := m.startTime
	m.startLock.Unlock()

	snap := types.MeterSnapshot{
		Elapsed:            time.Since(start),
		Transforms:         m.GetMetricCount(types.MetricTransformCount),
		ParallelTransforms: m.GetMetricCount(types.MetricParallelTransformCount),
		SamplesTransformed: m.GetMetricCount(types.MetricSamplesTransformed),
		PeakSamples:        m.GetMetricCount(types.MetricPeakSamples),
		TransformTime:      time.Duration(m.GetMetricCount(types.MetricTransformNanos)),
		Constructs:         m.GetMetricCount(types.MetricConstructCount),
		Evaluations:        m.GetMetricCount(types.MetricEvaluateCount),
		Goroutines:         runtime.NumGoroutine(),
		CPUPercent:         -1,
		RAMPercent:         -1,
	}
	if secs := snap.TransformTime.Seconds(); secs > 0 {
		snap.BinsPerSecond = float64(snap.SamplesTransformed) / secs
	}

	if m.hostStats {
		// A zero interval compares against the previous call instead of blocking.
		if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
			snap.CPUPercent = pct[0]
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			snap.RAMPercent = vm.UsedPercent
		}
	}
	return snap
}

// ReportData logs the current snapshot at info level.
func (m *Meter) ReportData() {
	snap := m.Snapshot()
	m.NotifyLoggers(types.InfoLevel, "Meter report",
		logschema.FieldComponent, m.GetComponentMetadata(),
		logschema.FieldEvent, "ReportData",
		"elapsed", snap.Elapsed,
		"transforms", snap.Transforms,
		"parallel_transforms", snap.ParallelTransforms,
		logschema.FieldSamples, snap.SamplesTransformed,
		"peak_samples", snap.PeakSamples,
		"transform_time", snap.TransformTime,
		"bins_per_second", snap.BinsPerSecond,
		"constructs", snap.Constructs,
		"evaluations", snap.Evaluations,
		"goroutines", snap.Goroutines,
		"cpu_percent", snap.CPUPercent,
		"ram_percent", snap.RAMPercent,
	)
}
