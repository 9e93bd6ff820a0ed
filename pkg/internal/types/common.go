package types

// ComponentMetadata identifies a component in logs and sensor callbacks.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Component class, e.g. "DFT_ENGINE".
	Name string // Human-readable name.
}

// Option configures a component of type T.
type Option[T any] func(T)
