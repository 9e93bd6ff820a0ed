// Package epicycle builds the rotating circle handle: it decomposes a closed
// path once with the DFT engine and then reconstructs the epicycle chain for
// any time t.
package epicycle

import (
	"sync"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// RotatingCircles holds an immutable circle list. Every reconstruction method
// is safe for concurrent use once Construct has returned.
type RotatingCircles struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	engine         types.Engine
	engineOptions  []types.Option[types.Engine]
	amplitudeOrder bool

	circles  []types.RotatingCircle
	spectrum types.Spectrum

	loggers     []types.Logger
	loggersLock sync.Mutex
	loggerCount int32

	sensors     []types.Sensor
	sensorLock  sync.Mutex
	sensorCount int32
}

// Construct decomposes points into rotating circles. points is copied and
// never retained. Construct does not fail: an empty path yields an empty circle
// list whose chain is just the origin.
func Construct(points []types.Point, options ...types.Option[types.RotatingCircles]) types.RotatingCircles {
	rc := &RotatingCircles{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "EPICYCLE",
		},
	}

	for _, option := range options {
		option(rc)
	}

	rc.build(points)
	return rc
}
