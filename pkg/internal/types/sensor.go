package types

// Sensor collects callbacks fired by the engine and the circle handle.
type Sensor interface {
	RegisterOnTransformStart(...func(c ComponentMetadata, samples int))
	RegisterOnTransformComplete(...func(c ComponentMetadata, report TransformReport))
	RegisterOnConstruct(...func(c ComponentMetadata, circles int))
	RegisterOnEvaluate(...func(c ComponentMetadata, t float64))

	InvokeOnTransformStart(c ComponentMetadata, samples int)
	InvokeOnTransformComplete(c ComponentMetadata, report TransformReport)
	InvokeOnConstruct(c ComponentMetadata, circles int)
	InvokeOnEvaluate(c ComponentMetadata, t float64)

	ConnectLogger(...Logger)
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
}
