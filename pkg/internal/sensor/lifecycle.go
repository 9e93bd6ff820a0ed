package sensor

import (
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

// RegisterOnTransformStart registers callbacks fired before a transform runs.
func (s *Sensor) RegisterOnTransformStart(callback ...func(types.ComponentMetadata, int)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnTransformStart = append(s.OnTransformStart, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnTransformStart invokes transform start callbacks.
func (s *Sensor) InvokeOnTransformStart(c types.ComponentMetadata, samples int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnTransformStart) {
		if cb == nil {
			continue
		}
		cb(c, samples)
	}
	s.NotifyLoggers(types.DebugLevel, "OnTransformStart",
		logschema.FieldComponent, s.snapshotMetadata(),
		logschema.FieldEvent, "OnTransformStart",
		"target", c,
		logschema.FieldSamples, samples,
	)
}

// RegisterOnTransformComplete registers callbacks fired once every bin is written.
func (s *Sensor) RegisterOnTransformComplete(callback ...func(types.ComponentMetadata, types.TransformReport)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnTransformComplete = append(s.OnTransformComplete, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnTransformComplete invokes transform completion callbacks.
func (s *Sensor) InvokeOnTransformComplete(c types.ComponentMetadata, report types.TransformReport) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnTransformComplete) {
		if cb == nil {
			continue
		}
		cb(c, report)
	}
	s.NotifyLoggers(types.DebugLevel, "OnTransformComplete",
		logschema.FieldComponent, s.snapshotMetadata(),
		logschema.FieldEvent, "OnTransformComplete",
		"target", c,
		logschema.FieldSamples, report.Samples,
		logschema.FieldStrategy, report.Strategy,
		logschema.FieldDuration, report.Duration,
	)
}

// RegisterOnConstruct registers callbacks fired when a circle list is built.
func (s *Sensor) RegisterOnConstruct(callback ...func(types.ComponentMetadata, int)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnConstruct = append(s.OnConstruct, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnConstruct invokes construction callbacks.
func (s *Sensor) InvokeOnConstruct(c types.ComponentMetadata, circles int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnConstruct) {
		if cb == nil {
			continue
		}
		cb(c, circles)
	}
}

// RegisterOnEvaluate registers callbacks fired on every reconstruction.
func (s *Sensor) RegisterOnEvaluate(callback ...func(types.ComponentMetadata, float64)) {
	if len(callback) == 0 {
		return
	}

	s.callbackLock.Lock()
	s.OnEvaluate = append(s.OnEvaluate, callback...)
	s.callbackLock.Unlock()
}

// InvokeOnEvaluate invokes reconstruction callbacks. It runs on the caller's
// frame loop, so it does not log.
func (s *Sensor) InvokeOnEvaluate(c types.ComponentMetadata, t float64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, s.OnEvaluate) {
		if cb == nil {
			continue
		}
		cb(c, t)
	}
}
