package input

import (
	"time"

	"github.com/valerio/go-chip8/chip8/input/action"
	"github.com/valerio/go-chip8/chip8/input/event"
	"github.com/valerio/go-chip8/chip8/memory"
)

// debounceDuration is the minimum time between repeated emulator
// feature events. Keypad keys are never debounced, games depend on
// seeing every press.
const debounceDuration = 300 * time.Millisecond

// Manager routes input actions: keypad keys go straight to the
// machine's keypad, emulator features fire registered callbacks.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]time.Time
	keypad        *memory.Keypad
}

func NewManager(keypad *memory.Keypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]time.Time),
		keypad:        keypad,
	}
}

// On registers a callback for a specific action and event type.
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	if act.IsKeypad() {
		if m.keypad != nil {
			switch evt {
			case event.Press:
				m.keypad.Press(act.KeypadCode())
			case event.Release:
				m.keypad.Release(act.KeypadCode())
			}
		}
		return
	}

	if evt == event.Press {
		now := time.Now()
		if now.Sub(m.lastTriggered[act]) < debounceDuration {
			return
		}
		m.lastTriggered[act] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}
