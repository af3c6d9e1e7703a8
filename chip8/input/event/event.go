package event

// Type represents the type of input event.
type Type int

const (
	Press Type = iota
	Release
)
