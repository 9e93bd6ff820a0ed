package meter

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// WithLogger attaches loggers to the meter.
func WithLogger(l ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(l...)
	}
}

// WithComponentMetadata sets the meter's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithoutHostStats skips CPU and memory sampling, e.g. in tests or sandboxes.
func WithoutHostStats() types.Option[types.Meter] {
	return func(m types.Meter) {
		if hs, ok := m.(interface{ SetHostStats(bool) }); ok {
			hs.SetHostStats(false)
		}
	}
}
