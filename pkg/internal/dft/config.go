package dft

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

// SetStrategy selects the execution strategy used by Transform.
func (e *Engine) SetStrategy(s types.Strategy) {
	e.configLock.Lock()
	old := e.strategy
	e.strategy = s
	e.configLock.Unlock()

	e.NotifyLoggers(types.DebugLevel, "SetStrategy",
		logschema.FieldComponent, e.GetComponentMetadata(),
		logschema.FieldEvent, "SetStrategy",
		logschema.FieldResult, "SUCCESS",
		"oldStrategy", old,
		"newStrategy", s,
	)
}

// SetConcurrencyControl sets the worker pool size and the number of bins per
// task. workers < 1 is clamped to 1; chunkSize < 1 means ceil(N/workers).
func (e *Engine) SetConcurrencyControl(workers int, chunkSize int) {
	if workers < 1 {
		workers = 1
	}
	if chunkSize < 0 {
		chunkSize = 0
	}

	e.configLock.Lock()
	oldWorkers, oldChunkSize := e.workers, e.chunkSize
	e.workers = workers
	e.chunkSize = chunkSize
	e.configLock.Unlock()

	e.NotifyLoggers(types.DebugLevel, "SetConcurrencyControl",
		logschema.FieldComponent, e.GetComponentMetadata(),
		logschema.FieldEvent, "SetConcurrencyControl",
		logschema.FieldResult, "SUCCESS",
		"oldWorkers", oldWorkers,
		"oldChunkSize", oldChunkSize,
		"newWorkers", workers,
		"newChunkSize", chunkSize,
	)
}

// SetParallelThreshold sets the input length from which StrategyAuto runs in parallel.
func (e *Engine) SetParallelThreshold(n int) {
	if n < 0 {
		n = 0
	}
	e.configLock.Lock()
	e.parallelThreshold = n
	e.configLock.Unlock()
}

// SetComponentMetadata updates the engine's name and ID.
func (e *Engine) SetComponentMetadata(name string, id string) {
	e.configLock.Lock()
	e.componentMetadata.Name = name
	e.componentMetadata.ID = id
	e.configLock.Unlock()
}
