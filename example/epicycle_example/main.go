package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joeydtaylor/epicycle/pkg/builder"
)

type config struct {
	shape       string
	input       string
	output      string
	samples     int
	workers     int
	strategy    string
	logLevel    string
	frames      int
	format      string
	compression string
	ordered     bool
	metrics     bool
}

func loadConfig() config {
	cfg := config{}
	flag.StringVar(&cfg.shape, "shape", builder.EnvOr("EPICYCLE_SHAPE", "heart"),
		"built-in path: "+strings.Join(builder.ShapeNames(), ", "))
	flag.StringVar(&cfg.input, "input", builder.EnvOr("EPICYCLE_INPUT", ""),
		"read points from a .json or text file instead of -shape")
	flag.StringVar(&cfg.output, "output", builder.EnvOr("EPICYCLE_OUTPUT", "-"), "frame destination, - for stdout")
	flag.IntVar(&cfg.samples, "samples", builder.EnvIntOr("EPICYCLE_SAMPLES", 200), "points sampled from -shape")
	flag.IntVar(&cfg.workers, "workers", builder.EnvIntOr("EPICYCLE_WORKERS", 0), "transform workers, 0 for one per core")
	flag.StringVar(&cfg.strategy, "strategy", builder.EnvOr("EPICYCLE_STRATEGY", "auto"), "auto, sequential or parallel")
	flag.StringVar(&cfg.logLevel, "log-level", builder.EnvOr("EPICYCLE_LOG_LEVEL", "info"), "debug, info, warn or error")
	flag.IntVar(&cfg.frames, "frames", builder.EnvIntOr("EPICYCLE_FRAMES", 1000), "frames over one period")
	flag.StringVar(&cfg.format, "format", builder.EnvOr("EPICYCLE_FORMAT", "json"), "json or binary")
	flag.StringVar(&cfg.compression, "compression", builder.EnvOr("EPICYCLE_COMPRESSION", "none"),
		"none, deflate, snappy, zstd, brotli or lz4")
	flag.BoolVar(&cfg.ordered, "ordered", false, "evaluate circles largest first")
	flag.BoolVar(&cfg.metrics, "metrics", false, "log transform and frame counters when done")
	flag.Parse()
	return cfg
}

func loadPoints(cfg config) ([]builder.Point, error) {
	if cfg.input == "" {
		return builder.Shape(cfg.shape, cfg.samples)
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	dec := builder.NewPointLineDecoder()
	if strings.EqualFold(filepath.Ext(cfg.input), ".json") {
		dec = builder.NewPointJSONDecoder()
	}
	points, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.input, err)
	}
	return points, nil
}

func openOutput(path string) (io.Writer, error) {
	if path == "" || path == "-" {
		// Hide Close so the frame writer leaves stdout open.
		return struct{ io.Writer }{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

func run(ctx context.Context, cfg config, logger builder.Logger) error {
	points, err := loadPoints(cfg)
	if err != nil {
		return err
	}

	compression, err := builder.ParseCompression(cfg.compression)
	if err != nil {
		return err
	}

	encoder := builder.NewFrameJSONEncoder()
	switch strings.ToLower(cfg.format) {
	case "json":
	case "binary", "bin":
		encoder = builder.NewFrameBinaryEncoder()
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	engineOptions := []builder.EngineOption{
		builder.EngineWithStrategy(builder.ParseStrategy(cfg.strategy)),
	}
	if cfg.workers > 0 {
		engineOptions = append(engineOptions, builder.EngineWithConcurrencyControl(cfg.workers, 0))
	}

	options := []builder.EpicycleOption{
		builder.EpicycleWithLogger(logger),
		builder.EpicycleWithEngineOptions(engineOptions...),
	}
	if cfg.ordered {
		options = append(options, builder.EpicycleWithAmplitudeOrder())
	}

	var meter builder.Meter
	if cfg.metrics {
		meter = builder.NewMeter(builder.MeterWithLogger(logger))
		options = append(options, builder.EpicycleWithSensor(
			builder.NewSensor(builder.SensorWithMeter(meter)),
		))
	}
	circles := builder.Construct(points, options...)

	spec := circles.Spectrum()
	logger.Info("Spectrum",
		"event", "Spectrum",
		"circles", spec.Circles,
		"total_energy", spec.TotalEnergy,
		"offset", spec.Offset.String(),
		"dominant_frequency", spec.DominantFrequency,
		"energy_cutoff", spec.EnergyCutoff,
	)

	out, err := openOutput(cfg.output)
	if err != nil {
		return err
	}
	fw, err := builder.NewFrameWriter(out, encoder, compression)
	if err != nil {
		return err
	}

	frames := max(cfg.frames, 1)
	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			break
		}
		t := float64(i) / float64(frames)
		if err := fw.Write(builder.Frame{T: t, Points: circles.CreatePoints(t)}); err != nil {
			_ = fw.Close()
			return err
		}
	}
	if err := fw.Close(); err != nil {
		return err
	}

	logger.Info("Frames written",
		"event", "Write",
		"result", "SUCCESS",
		"frames", fw.Frames(),
		"format", cfg.format,
		"compression", compression.String(),
	)
	if meter != nil {
		meter.ReportData()
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	logger := builder.NewLogger(
		builder.LoggerWithLevel(cfg.logLevel),
		builder.LoggerWithDevelopment(true),
	)
	defer func() { _ = logger.Flush() }()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("epicycle_example failed", "event", "Run", "result", "FAILURE", "error", err)
		_ = logger.Flush()
		os.Exit(1)
	}
}
