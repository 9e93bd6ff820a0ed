package types

// RotatingCircles is the constructed handle: an immutable circle list plus the
// reconstruction operations a rendering host calls every frame.
type RotatingCircles interface {
	// CreatePoints returns the epicycle chain at t as x0,y0,x1,y1,... (2·(N+1) values).
	CreatePoints(t float64) []float64
	// Points returns the epicycle chain at t, origin first.
	Points(t float64) []Point
	// Trace samples the traced position at steps evenly spaced times over one period.
	Trace(steps int) []Point
	// Circles returns a copy of the circle list.
	Circles() []RotatingCircle
	Len() int
	Spectrum() Spectrum

	// ConnectEngine, ConfigureEngine and SetAmplitudeOrder only affect construction.
	ConnectEngine(Engine)
	ConfigureEngine(...Option[Engine])
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	SetAmplitudeOrder(bool)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
