package action

// Action represents input actions that can be performed in the emulator.
type Action int

const (
	// hex keypad keys, in keypad order
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// emulator features
	EmulatorSnapshot
	EmulatorQuit
)

// Key returns the action for a keypad code (0-F).
func Key(code byte) Action {
	return Key0 + Action(code&0xF)
}

// IsKeypad reports whether the action is a keypad key.
func (a Action) IsKeypad() bool {
	return a >= Key0 && a <= KeyF
}

// KeypadCode returns the keypad code (0-F) of a keypad action.
func (a Action) KeypadCode() byte {
	return byte(a - Key0)
}
