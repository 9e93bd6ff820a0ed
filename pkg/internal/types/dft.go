package types

import "time"

// Strategy selects how an Engine walks the frequency bins.
type Strategy int

const (
	StrategyAuto       Strategy = iota // Parallel for large inputs, sequential otherwise.
	StrategySequential                 // Nested loops on the calling goroutine.
	StrategyParallel                   // Bins split into chunks across a worker pool.
)

func (s Strategy) String() string {
	switch s {
	case StrategySequential:
		return "sequential"
	case StrategyParallel:
		return "parallel"
	default:
		return "auto"
	}
}

// ParseStrategy maps a name to a Strategy, falling back to StrategyAuto.
func ParseStrategy(name string) Strategy {
	switch name {
	case "sequential", "seq":
		return StrategySequential
	case "parallel", "par":
		return StrategyParallel
	default:
		return StrategyAuto
	}
}

// Engine computes the forward discrete Fourier transform of a sample sequence.
type Engine interface {
	// Transform runs the configured strategy. The result has the same length as samples.
	Transform(samples []Complex) []Complex
	TransformSequential(samples []Complex) []Complex
	TransformParallel(samples []Complex) []Complex

	SetStrategy(Strategy)
	SetConcurrencyControl(workers int, chunkSize int)
	SetParallelThreshold(n int)
	GetStrategy() Strategy
	GetWorkers() int

	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}

// TransformReport is handed to sensors once a transform finishes.
type TransformReport struct {
	Samples  int
	Strategy Strategy
	Workers  int
	Chunks   int
	Duration time.Duration
}
