package epicycle

import "github.com/joeydtaylor/epicycle/pkg/internal/types"

// ConnectEngine sets the engine used by Construct.
func (rc *RotatingCircles) ConnectEngine(e types.Engine) {
	rc.engine = e
}

// ConfigureEngine queues options applied to the engine before the transform.
func (rc *RotatingCircles) ConfigureEngine(options ...types.Option[types.Engine]) {
	rc.engineOptions = append(rc.engineOptions, options...)
}

// SetAmplitudeOrder reorders the circle list largest first when enabled.
func (rc *RotatingCircles) SetAmplitudeOrder(enabled bool) {
	rc.amplitudeOrder = enabled
}

// GetComponentMetadata returns the handle metadata.
func (rc *RotatingCircles) GetComponentMetadata() types.ComponentMetadata {
	rc.metadataLock.Lock()
	defer rc.metadataLock.Unlock()
	return rc.componentMetadata
}

// SetComponentMetadata updates the handle's name and ID.
func (rc *RotatingCircles) SetComponentMetadata(name string, id string) {
	rc.metadataLock.Lock()
	rc.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: rc.componentMetadata.Type}
	rc.metadataLock.Unlock()
}
