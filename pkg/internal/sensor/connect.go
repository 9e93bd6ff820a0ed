package sensor

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// ConnectLogger registers loggers for sensor output. Nil loggers are ignored.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	kept := make([]types.Logger, 0, len(loggers))
	for _, logger := range loggers {
		if logger != nil {
			kept = append(kept, logger)
		}
	}
	if len(kept) == 0 {
		return
	}

	s.loggersLock.Lock()
	s.loggers = append(s.loggers, kept...)
	s.loggersLock.Unlock()
}
