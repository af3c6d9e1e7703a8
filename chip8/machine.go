package chip8

import (
	"os"
	"sync"

	"github.com/valerio/go-chip8/chip8/cpu"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

// Options fix the machine's behavior at construction time.
type Options struct {
	// Quirks selects the hardware variant behavior. The zero value is
	// the plain modern interpretation with every quirk off.
	Quirks cpu.Quirks

	// FadeStep overrides the per-frame afterglow decay. Zero keeps the
	// default; video.MaxBrightness disables the fade effect.
	FadeStep uint8
}

// FrameSnapshot is one published frame: the brightness grid at the last
// frame boundary plus the sound signal. Safe to read from any goroutine.
type FrameSnapshot struct {
	Width      int
	Height     int
	Brightness []uint8
	Sound      bool
}

// Machine owns all interpreter state: memory, CPU, timers, keypad and
// framebuffer. Step and AdvanceFrame are serialized by an internal
// lock; CurrentFrame and the keypad are safe from other goroutines.
type Machine struct {
	mu sync.Mutex

	cpu    *cpu.CPU
	mem    *memory.RAM
	fb     *video.FrameBuffer
	timers *memory.Timers
	keypad *memory.Keypad

	frameMu sync.RWMutex
	frame   FrameSnapshot
}

// New creates a machine with no program loaded.
func New(opts Options) *Machine {
	mem := memory.New()
	fb := video.NewFrameBuffer()
	if opts.FadeStep != 0 {
		fb.SetFadeStep(opts.FadeStep)
	}

	timers := &memory.Timers{}
	keypad := &memory.Keypad{}

	m := &Machine{
		cpu:    cpu.New(mem, fb, keypad, timers, opts.Quirks),
		mem:    mem,
		fb:     fb,
		timers: timers,
		keypad: keypad,
	}
	m.publishFrame()

	return m
}

// NewWithFile creates a machine and loads the ROM at path into it.
func NewWithFile(path string, opts Options) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := New(opts)
	if err := m.LoadProgram(data); err != nil {
		return nil, err
	}

	return m, nil
}

// LoadProgram writes the program into memory at the load offset.
func (m *Machine) LoadProgram(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mem.LoadProgram(data)
}

// Step executes exactly one instruction. Faults are terminal for the
// run; the machine never retries or logs, the driver decides.
func (m *Machine) Step() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cpu.Step()
}

// AdvanceFrame is the 60Hz frame boundary: timers tick, the afterglow
// decays, the per-frame draw latch clears and a fresh frame snapshot is
// published. Call exactly 60 times per second, independent of how often
// Step runs.
func (m *Machine) AdvanceFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timers.Tick()
	m.fb.Decay()
	m.cpu.BeginFrame()
	m.publishFrame()
}

// RunFrame steps the given number of instructions and then advances the
// frame boundary. The first fault stops the batch.
func (m *Machine) RunFrame(cycles int) error {
	for i := 0; i < cycles; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}

	m.AdvanceFrame()
	return nil
}

// publishFrame snapshots display and sound state for the render thread.
// Callers must hold mu.
func (m *Machine) publishFrame() {
	snap := FrameSnapshot{
		Width:      m.fb.Width(),
		Height:     m.fb.Height(),
		Brightness: m.fb.Snapshot(),
		Sound:      m.timers.SoundActive(),
	}

	m.frameMu.Lock()
	m.frame = snap
	m.frameMu.Unlock()
}

// CurrentFrame returns the frame published at the last frame boundary.
func (m *Machine) CurrentFrame() FrameSnapshot {
	m.frameMu.RLock()
	defer m.frameMu.RUnlock()
	return m.frame
}

// Keypad exposes the keypad for the host input layer.
func (m *Machine) Keypad() *memory.Keypad {
	return m.keypad
}

// SoundActive reports the sound timer signal.
func (m *Machine) SoundActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timers.SoundActive()
}

// PC returns the current program counter, for fault reporting.
func (m *Machine) PC() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cpu.PC()
}
