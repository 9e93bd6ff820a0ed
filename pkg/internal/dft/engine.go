// Package dft computes the forward discrete Fourier transform of a closed 2D
// path sampled as complex values.
//
// The transform is the direct O(N²) definition
//
//	X_k = (1/N) · Σ_{n=0}^{N-1} x_n · exp(-i·2π·k·n/N)
//
// evaluated either sequentially or with the frequency bins split into
// contiguous chunks across a fixed worker pool. Every bin depends only on the
// read-only input, so workers write straight into their own slots of a
// pre-sized output slice and the result is index ordered no matter which
// worker finishes first.
package dft

import (
	"sync"
	"sync/atomic"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// DefaultParallelThreshold is the input length from which StrategyAuto goes parallel.
const DefaultParallelThreshold = 256

// Engine is the DFT component.
type Engine struct {
	componentMetadata types.ComponentMetadata
	configLock        sync.Mutex
	strategy          types.Strategy
	workers           int
	chunkSize         int // 0 means ceil(N/workers).
	parallelThreshold int

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32
	sensors     []types.Sensor
	sensorLock  sync.Mutex
	sensorCount int32
}

// settings is a consistent copy of the configuration taken at the start of a transform.
type settings struct {
	strategy          types.Strategy
	workers           int
	chunkSize         int
	parallelThreshold int
}

// NewEngine creates an Engine using StrategyAuto and DefaultWorkers unless
// options say otherwise.
func NewEngine(options ...types.Option[types.Engine]) types.Engine {
	e := &Engine{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DFT_ENGINE",
		},
		strategy:          types.StrategyAuto,
		workers:           utils.DefaultWorkers(),
		parallelThreshold: DefaultParallelThreshold,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *Engine) snapshot() settings {
	e.configLock.Lock()
	defer e.configLock.Unlock()
	return settings{
		strategy:          e.strategy,
		workers:           e.workers,
		chunkSize:         e.chunkSize,
		parallelThreshold: e.parallelThreshold,
	}
}

func (e *Engine) hasTelemetry() bool {
	return atomic.LoadInt32(&e.loggerCount) != 0 || atomic.LoadInt32(&e.sensorCount) != 0
}
