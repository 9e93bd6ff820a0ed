package dft

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// GetComponentMetadata returns the engine metadata.
func (e *Engine) GetComponentMetadata() types.ComponentMetadata {
	e.configLock.Lock()
	defer e.configLock.Unlock()
	return e.componentMetadata
}

// GetStrategy returns the configured strategy (possibly StrategyAuto).
func (e *Engine) GetStrategy() types.Strategy {
	e.configLock.Lock()
	defer e.configLock.Unlock()
	return e.strategy
}

// GetWorkers returns the worker pool size.
func (e *Engine) GetWorkers() int {
	e.configLock.Lock()
	defer e.configLock.Unlock()
	return e.workers
}
