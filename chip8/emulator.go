package chip8

import "github.com/valerio/go-chip8/chip8/memory"

// Emulator is the interface the backends drive.
type Emulator interface {
	RunFrame(cycles int) error
	CurrentFrame() FrameSnapshot
	Keypad() *memory.Keypad
}

var _ Emulator = (*Machine)(nil)
