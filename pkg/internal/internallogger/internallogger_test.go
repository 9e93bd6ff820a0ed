package internallogger_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeydtaylor/epicycle/pkg/internal/internallogger"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

func TestNewLogger_DefaultLevel(t *testing.T) {
	logger := internallogger.NewLogger()
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel, got %v", got)
	}
}

func TestNewLogger_WithLevel(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))
	if got := logger.GetLevel(); got != types.DebugLevel {
		t.Fatalf("expected DebugLevel, got %v", got)
	}

	logger = internallogger.NewLogger(internallogger.LoggerWithLevel("unknown"))
	if got := logger.GetLevel(); got != types.InfoLevel {
		t.Fatalf("expected InfoLevel on unknown level, got %v", got)
	}
}

func TestLogger_SetLevel(t *testing.T) {
	logger := internallogger.NewLogger()
	logger.SetLevel(types.ErrorLevel)
	if got := logger.GetLevel(); got != types.ErrorLevel {
		t.Fatalf("expected ErrorLevel, got %v", got)
	}
	if logger.IsLevelEnabled(types.WarnLevel) {
		t.Fatalf("expected warn to be disabled at error level")
	}
	if !logger.IsLevelEnabled(types.ErrorLevel) {
		t.Fatalf("expected error to be enabled at error level")
	}
}

func TestLogger_AddRemoveListSinks(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))

	path := filepath.Join(t.TempDir(), "nested", "epicycle.log")

	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if err := logger.AddSink("file", types.SinkConfig{Type: "stdout"}); err == nil {
		t.Fatalf("expected error registering a duplicate sink id")
	}
	if err := logger.AddSink("stderr", types.SinkConfig{Type: "stderr"}); err != nil {
		t.Fatalf("AddSink(stderr) error: %v", err)
	}

	sinks, err := logger.ListSinks()
	if err != nil {
		t.Fatalf("ListSinks error: %v", err)
	}
	if len(sinks) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(sinks))
	}

	if err := logger.RemoveSink("stderr"); err != nil {
		t.Fatalf("RemoveSink error: %v", err)
	}
	if err := logger.RemoveSink("missing"); err == nil {
		t.Fatalf("expected error removing missing sink")
	}
}

func TestLogger_FileSinkWritesSchema(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithOutputPaths(filepath.Join(t.TempDir(), "base.log")),
		internallogger.LoggerWithFields(map[string]interface{}{"app": "epicycle-test"}),
	)

	path := filepath.Join(t.TempDir(), "sink.log")
	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{"path": path}}); err != nil {
		t.Fatalf("AddSink(file) error: %v", err)
	}

	logger.Info("Construct", "event", "Construct", "samples", 4)
	if err := logger.RemoveSink("file"); err != nil {
		t.Fatalf("RemoveSink error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open sink file: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one log line in sink file")
	}
	var record logschema.LogRecord
	if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if record[logschema.FieldSchema] != logschema.SchemaID {
		t.Fatalf("expected schema %q, got %v", logschema.SchemaID, record[logschema.FieldSchema])
	}
	if record[logschema.FieldMessage] != "Construct" {
		t.Fatalf("expected msg Construct, got %v", record[logschema.FieldMessage])
	}
	if record["app"] != "epicycle-test" {
		t.Fatalf("expected app field, got %v", record["app"])
	}
	if record["samples"] != float64(4) {
		t.Fatalf("expected samples=4, got %v", record["samples"])
	}
}

func TestLogger_AddSinkInvalidConfig(t *testing.T) {
	logger := internallogger.NewLogger()

	if err := logger.AddSink("file", types.SinkConfig{Type: "file", Config: map[string]interface{}{}}); err == nil {
		t.Fatalf("expected error for missing file path")
	}
	if err := logger.AddSink("network", types.SinkConfig{Type: "network"}); err == nil {
		t.Fatalf("expected error for unsupported sink type")
	}
}

func TestLogger_LogHandlesOddKeys(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithLevel("debug"))

	logger.Log(types.InfoLevel, "odd keys", "key", "value", "orphan")
	logger.Log(types.InfoLevel, "non-string key", 123, "value")
}

func TestLogger_Flush(t *testing.T) {
	logger := internallogger.NewLogger(internallogger.LoggerWithOutputPaths(filepath.Join(t.TempDir(), "flush.log")))
	if err := logger.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
}

func TestLogger_OptionsCoverage(t *testing.T) {
	logger := internallogger.NewLogger(
		internallogger.LoggerWithDevelopment(true),
		internallogger.LoggerWithSchema("custom.v1"),
		internallogger.LoggerWithoutCaller(),
		internallogger.ZapAdapterWithCallerSkip(1),
	)
	logger.Info("options")
}
