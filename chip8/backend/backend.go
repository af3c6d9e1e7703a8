package backend

import (
	chip8 "github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
)

// InputEvent is one translated platform input event.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Config holds configuration common to all backends.
type Config struct {
	Title   string
	ROMName string
}

// Backend represents a complete host platform for the machine.
// Backends are responsible for rendering published frames to their
// specific output, translating platform input into actions, and any
// platform-specific features (snapshots, graceful shutdown).
type Backend interface {
	// Init configures the backend. Required before calling Update.
	Init(config Config) error

	// Update renders the frame and returns the input events gathered
	// since the last call.
	Update(frame chip8.FrameSnapshot) ([]InputEvent, error)

	// Cleanup releases resources when shutting down.
	Cleanup() error
}
