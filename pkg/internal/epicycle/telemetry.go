package epicycle

import (
	"sync/atomic"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// ConnectLogger attaches loggers. Nil entries are skipped.
func (rc *RotatingCircles) ConnectLogger(l ...types.Logger) {
	rc.loggersLock.Lock()
	for _, logger := range l {
		if logger != nil {
			rc.loggers = append(rc.loggers, logger)
		}
	}
	atomic.StoreInt32(&rc.loggerCount, int32(len(rc.loggers)))
	rc.loggersLock.Unlock()
}

// ConnectSensor attaches sensors. Nil entries are skipped.
func (rc *RotatingCircles) ConnectSensor(s ...types.Sensor) {
	rc.sensorLock.Lock()
	for _, sensor := range s {
		if sensor != nil {
			rc.sensors = append(rc.sensors, sensor)
		}
	}
	atomic.StoreInt32(&rc.sensorCount, int32(len(rc.sensors)))
	rc.sensorLock.Unlock()
}

// NotifyLoggers emits a log event to all configured loggers.
func (rc *RotatingCircles) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if atomic.LoadInt32(&rc.loggerCount) == 0 {
		return
	}

	type levelChecker interface {
		IsLevelEnabled(types.LogLevel) bool
	}

	for _, l := range rc.snapshotLoggers() {
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

func (rc *RotatingCircles) snapshotLoggers() []types.Logger {
	rc.loggersLock.Lock()
	defer rc.loggersLock.Unlock()
	return append([]types.Logger(nil), rc.loggers...)
}

func (rc *RotatingCircles) snapshotSensors() []types.Sensor {
	rc.sensorLock.Lock()
	defer rc.sensorLock.Unlock()
	return append([]types.Sensor(nil), rc.sensors...)
}

func (rc *RotatingCircles) notifyConstruct(circles int) {
	meta := rc.GetComponentMetadata()
	for _, s := range rc.snapshotSensors() {
		s.InvokeOnConstruct(meta, circles)
	}
}

func (rc *RotatingCircles) notifyEvaluate(t float64) {
	meta := rc.GetComponentMetadata()
	for _, s := range rc.snapshotSensors() {
		s.InvokeOnEvaluate(meta, t)
	}
}
