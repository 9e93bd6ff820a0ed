package epicycle

import (
	"time"

	"github.com/joeydtaylor/epicycle/pkg/internal/dft"
	"github.com/joeydtaylor/epicycle/pkg/internal/extractor"
	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
	"github.com/joeydtaylor/epicycle/pkg/logschema"
)

// build runs the transform and fixes the circle list.
func (rc *RotatingCircles) build(points []types.Point) {
	start := time.Now()

	samples := utils.Map(points, func(_ int, p types.Point) types.Complex {
		return types.FromPoint(p)
	})

	engine := rc.resolveEngine()
	circles := extractor.Extract(engine.Transform(samples))
	if rc.amplitudeOrder {
		circles = extractor.SortByAmplitude(circles)
	}

	rc.circles = circles
	rc.spectrum = extractor.Analyze(circles)

	rc.NotifyLoggers(types.InfoLevel, "Construct",
		logschema.FieldComponent, rc.GetComponentMetadata(),
		logschema.FieldEvent, "Construct",
		logschema.FieldResult, "SUCCESS",
		logschema.FieldSamples, len(samples),
		logschema.FieldStrategy, engine.GetStrategy(),
		logschema.FieldCircles, len(circles),
		logschema.FieldDuration, time.Since(start),
	)
	rc.notifyConstruct(len(circles))
}

// resolveEngine returns the connected engine or a default one that shares the
// handle's loggers and sensors.
func (rc *RotatingCircles) resolveEngine() types.Engine {
	engine := rc.engine
	if engine == nil {
		engine = dft.NewEngine(
			dft.WithLogger(rc.snapshotLoggers()...),
			dft.WithSensor(rc.snapshotSensors()...),
		)
	}
	for _, option := range rc.engineOptions {
		option(engine)
	}
	return engine
}
