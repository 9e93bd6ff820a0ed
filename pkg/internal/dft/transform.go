package dft

import (
	"math"
	"time"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

// Transform computes the coefficients of samples with the configured strategy.
// The output always has len(samples) entries; an empty input yields an empty,
// non-nil slice.
func (e *Engine) Transform(samples []types.Complex) []types.Complex {
	cfg := e.snapshot()
	return e.run(samples, resolve(cfg, len(samples)), cfg)
}

// TransformSequential computes the coefficients on the calling goroutine.
func (e *Engine) TransformSequential(samples []types.Complex) []types.Complex {
	return e.run(samples, types.StrategySequential, e.snapshot())
}

// TransformParallel computes the coefficients across the worker pool.
func (e *Engine) TransformParallel(samples []types.Complex) []types.Complex {
	return e.run(samples, types.StrategyParallel, e.snapshot())
}

// resolve turns StrategyAuto into a concrete strategy for an input of length n.
func resolve(cfg settings, n int) types.Strategy {
	switch cfg.strategy {
	case types.StrategySequential, types.StrategyParallel:
		return cfg.strategy
	}
	if cfg.workers > 1 && n >= cfg.parallelThreshold {
		return types.StrategyParallel
	}
	return types.StrategySequential
}

func (e *Engine) run(samples []types.Complex, strategy types.Strategy, cfg settings) []types.Complex {
	telemetry := e.hasTelemetry()
	var start time.Time
	if telemetry {
		start = time.Now()
		e.notifyTransformStart(len(samples))
	}

	var (
		out    []types.Complex
		chunks int
	)
	if strategy == types.StrategyParallel {
		out, chunks = transformParallel(samples, cfg.workers, cfg.chunkSize)
	} else {
		out = transformSequential(samples)
		if len(samples) > 0 {
			chunks = 1
		}
	}

	if telemetry {
		report := types.TransformReport{
			Samples:  len(samples),
			Strategy: strategy,
			Workers:  1,
			Chunks:   chunks,
			Duration: time.Since(start),
		}
		if strategy == types.StrategyParallel {
			report.Workers = min(cfg.workers, max(chunks, 1))
		}
		e.NotifyLoggers(types.DebugLevel, "Transform",
			logschema.FieldComponent, e.GetComponentMetadata(),
			logschema.FieldEvent, "Transform",
			logschema.FieldResult, "SUCCESS",
			logschema.FieldSamples, report.Samples,
			logschema.FieldStrategy, report.Strategy,
			logschema.FieldWorkers, report.Workers,
			logschema.FieldChunks, report.Chunks,
			logschema.FieldDuration, report.Duration,
		)
		e.notifyTransformComplete(report)
	}

	return out
}

func transformSequential(samples []types.Complex) []types.Complex {
	out := make([]types.Complex, len(samples))
	for k := range out {
		out[k] = bin(samples, k)
	}
	return out
}

// bin computes the single coefficient X_k. The product k·n is reduced mod N
// before scaling so φ stays in [0, 2π) for long inputs.
func bin(samples []types.Complex, k int) types.Complex {
	n := len(samples)
	var sum types.Complex
	for i, x := range samples {
		phi := types.TwoPi * float64((k*i)%n) / float64(n)
		s, c := math.Sincos(phi)
		sum = sum.Add(x.Mul(types.Complex{Re: c, Im: -s}))
	}
	return sum.Div(float64(n))
}
