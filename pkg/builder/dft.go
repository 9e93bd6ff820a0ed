package builder

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/dft"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

type Engine = types.Engine

type EngineOption = types.Option[types.Engine]

type Strategy = types.Strategy

type TransformReport = types.TransformReport

const (
	StrategyAuto       = types.StrategyAuto
	StrategySequential = types.StrategySequential
	StrategyParallel   = types.StrategyParallel
)

// DefaultParallelThreshold is the input length from which auto mode goes parallel.
const DefaultParallelThreshold = dft.DefaultParallelThreshold

// ParseStrategy maps "sequential", "parallel" or "auto" to a Strategy.
func ParseStrategy(name string) Strategy {
	return types.ParseStrategy(name)
}

// NewEngine creates a DFT engine.
func NewEngine(options ...types.Option[types.Engine]) types.Engine {
	return dft.NewEngine(options...)
}

// EngineWithStrategy selects sequential, parallel or auto execution.
func EngineWithStrategy(s Strategy) types.Option[types.Engine] {
	return dft.WithStrategy(s)
}

// EngineWithConcurrencyControl sets the worker count and bins per task.
func EngineWithConcurrencyControl(workers int, chunkSize int) types.Option[types.Engine] {
	return dft.WithConcurrencyControl(workers, chunkSize)
}

// EngineWithParallelThreshold sets the auto mode cut over.
func EngineWithParallelThreshold(n int) types.Option[types.Engine] {
	return dft.WithParallelThreshold(n)
}

// EngineWithLogger attaches loggers to the engine.
func EngineWithLogger(l ...types.Logger) types.Option[types.Engine] {
	return dft.WithLogger(l...)
}

// EngineWithSensor attaches sensors to the engine.
func EngineWithSensor(s ...types.Sensor) types.Option[types.Engine] {
	return dft.WithSensor(s...)
}

// EngineWithComponentMetadata sets the engine's name and ID.
func EngineWithComponentMetadata(name string, id string) types.Option[types.Engine] {
	return dft.WithComponentMetadata(name, id)
}
