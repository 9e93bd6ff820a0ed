package epicycle_test

import (
	"sync"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
)

// recordingLogger keeps every message it receives.
type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	l.msgs = append(l.msgs, msg)
	l.mu.Unlock()
}

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

func (l *recordingLogger) has(msg string) bool {
	for _, m := range l.messages() {
		if m == msg {
			return true
		}
	}
	return false
}

func (l *recordingLogger) GetLevel() types.LogLevel               { return types.DebugLevel }
func (l *recordingLogger) SetLevel(types.LogLevel)                {}
func (l *recordingLogger) Debug(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{})      { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{})      { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) DPanic(msg string, _ ...interface{})    { l.record(msg) }
func (l *recordingLogger) Panic(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Fatal(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Flush() error                           { return nil }
func (l *recordingLogger) AddSink(string, types.SinkConfig) error { return nil }
func (l *recordingLogger) RemoveSink(string) error                { return nil }
func (l *recordingLogger) ListSinks() ([]string, error)           { return nil, nil }
