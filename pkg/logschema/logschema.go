package logschema

// Field names and schema identifier for epicycle structured logs.
const (
	SchemaID    = "epicycle.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldSamples   = "samples"
	FieldStrategy  = "strategy"
	FieldWorkers   = "workers"
	FieldChunks    = "chunks"
	FieldDuration  = "duration"
	FieldCircles   = "circles"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
