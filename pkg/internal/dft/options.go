package dft

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// WithStrategy selects sequential, parallel or auto execution.
func WithStrategy(s types.Strategy) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.SetStrategy(s)
	}
}

// WithConcurrencyControl sets the worker pool size and bins per task (0 = even split).
func WithConcurrencyControl(workers int, chunkSize int) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.SetConcurrencyControl(workers, chunkSize)
	}
}

// WithParallelThreshold sets the input length from which auto mode runs in parallel.
func WithParallelThreshold(n int) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.SetParallelThreshold(n)
	}
}

// WithLogger attaches loggers to the engine.
func WithLogger(l ...types.Logger) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.ConnectLogger(l...)
	}
}

// WithSensor attaches sensors to the engine.
func WithSensor(s ...types.Sensor) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.ConnectSensor(s...)
	}
}

// WithComponentMetadata sets the engine's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Engine] {
	return func(e types.Engine) {
		e.SetComponentMetadata(name, id)
	}
}
