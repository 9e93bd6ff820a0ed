package dft

import (
	"sync/atomic"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

// ConnectLogger attaches loggers. Nil entries are skipped.
func (e *Engine) ConnectLogger(l ...types.Logger) {
	e.loggersLock.Lock()
	for _, logger := range l {
		if logger == nil {
			continue
		}
		e.loggers = append(e.loggers, logger)
	}
	atomic.StoreInt32(&e.loggerCount, int32(len(e.loggers)))
	e.loggersLock.Unlock()
}

// ConnectSensor attaches sensors. Nil entries are skipped.
func (e *Engine) ConnectSensor(s ...types.Sensor) {
	e.sensorLock.Lock()
	for _, sensor := range s {
		if sensor == nil {
			continue
		}
		e.sensors = append(e.sensors, sensor)
	}
	atomic.StoreInt32(&e.sensorCount, int32(len(e.sensors)))
	e.sensorLock.Unlock()

	for _, sensor := range s {
		if sensor == nil {
			continue
		}
		e.NotifyLoggers(types.DebugLevel, "ConnectSensor",
			logschema.FieldComponent, e.GetComponentMetadata(),
			logschema.FieldEvent, "ConnectSensor",
			logschema.FieldResult, "SUCCESS",
			"target", sensor.GetComponentMetadata(),
		)
	}
}

// NotifyLoggers emits a log event to all configured loggers.
func (e *Engine) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if atomic.LoadInt32(&e.loggerCount) == 0 {
		return
	}

	e.loggersLock.Lock()
	loggers := append([]types.Logger(nil), e.loggers...)
	e.loggersLock.Unlock()

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, l := range loggers {
		if lc, ok := l.(levelChecker); ok && !lc.IsLevelEnabled(level) {
			continue
		}
		switch level {
		case types.DebugLevel:
			l.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			l.Info(msg, keysAndValues...)
		case types.WarnLevel:
			l.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			l.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			l.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			l.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			l.Fatal(msg, keysAndValues...)
		}
	}
}

func (e *Engine) snapshotSensors() []types.Sensor {
	e.sensorLock.Lock()
	defer e.sensorLock.Unlock()
	return append([]types.Sensor(nil), e.sensors...)
}

func (e *Engine) notifyTransformStart(samples int) {
	meta := e.GetComponentMetadata()
	for _, s := range e.snapshotSensors() {
		s.InvokeOnTransformStart(meta, samples)
	}
}

func (e *Engine) notifyTransformComplete(report types.TransformReport) {
	meta := e.GetComponentMetadata()
	for _, s := range e.snapshotSensors() {
		s.InvokeOnTransformComplete(meta, report)
	}
}
