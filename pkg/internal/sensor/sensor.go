// Package sensor provides callback hooks that report what the DFT engine and the
// rotating circle handle are doing, without coupling them to a metrics backend.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/epicycle/pkg/internal/types"
	"github.com/joeydtaylor/epicycle/pkg/internal/utils"
)

// Sensor holds registered callbacks and the loggers it reports through.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	OnTransformStart    []func(types.ComponentMetadata, int)
	OnTransformComplete []func(types.ComponentMetadata, types.TransformReport)
	OnConstruct         []func(types.ComponentMetadata, int)
	OnEvaluate          []func(types.ComponentMetadata, float64)
	callbackLock        sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewSensor creates a Sensor and applies options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, option := range options {
		option(s)
	}

	return s
}
