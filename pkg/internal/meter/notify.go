package meter

import (
	"sync/atomic"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// GetComponentMetadata returns the metadata.
func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	m.metadataLock.Lock()
	defer m.metadataLock.Unlock()
	return m.componentMetadata
}

// SetComponentMetadata sets the component metadata.
func (m *Meter) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	m.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: m.componentMetadata.Type}
	m.metadataLock.Unlock()
}

// ConnectLogger attaches loggers. Nil entries are skipped.
func (m *Meter) ConnectLogger(l ...types.Logger) {
	m.loggersLock.Lock()
	for _, logger := range l {
		if logger != nil {
			m.loggers = append(m.loggers, logger)
		}
	}
	atomic.StoreInt32(&m.loggerCount, int32(len(m.loggers)))
	m.loggersLock.Unlock()
}

// NotifyLoggers sends a log entry to each logger with the level enabled.
func (m *Meter) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	if atomic.LoadInt32(&m.loggerCount) == 0 {
		return
	}

	m.loggersLock.Lock()
	loggers := append([]types.Logger(nil), m.loggers...)
	m.loggersLock.Unlock()

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
