package internallogger

import (
	"sort"
	"sync"

	"github.com/joeydtaylor/epicycle/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts the zap configuration, the starting level and the caller skip.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
	callerDepth int
	callerOn    bool
	development bool
}

// NewLogger builds a JSON logger writing to the configured output paths
// (stderr unless overridden) at Info level unless overridden.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 2

	config.Level = zap.NewAtomicLevelAt(level)
	config.InitialFields = map[string]interface{}{
		logschema.FieldSchema: logschema.SchemaID,
	}

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := config.Level
	encConfig := standardEncoderConfig()

	ws, _, err := zap.Open(config.OutputPaths...)
	if err != nil {
		ws = zapcore.Lock(zapcore.AddSync(stderrSyncer()))
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		encConfig:   encConfig,
		baseCore:    zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), ws, atomicLevel),
		baseFields:  fieldsFromMap(config.InitialFields),
		sinks:       make(map[string]sinkEntry),
		callerDepth: callerDepth,
		callerOn:    !config.DisableCaller,
		development: config.Development,
	}

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}

func fieldsFromMap(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		out = append(out, zap.Any(key, fields[key]))
	}
	return out
}
