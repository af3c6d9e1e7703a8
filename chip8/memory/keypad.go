package memory

import "sync"

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keypad is the 16-key hex pad. Press/Release may be called from an
// input goroutine while the interpreter goroutine polls, so state is
// guarded by a lock; Snapshot gives the interpreter a tear-free read.
type Keypad struct {
	mu   sync.RWMutex
	keys [KeyCount]bool
}

// Press marks the key (0-F) as held down.
func (k *Keypad) Press(key byte) {
	k.mu.Lock()
	k.keys[key&0xF] = true
	k.mu.Unlock()
}

// Release marks the key (0-F) as up.
func (k *Keypad) Release(key byte) {
	k.mu.Lock()
	k.keys[key&0xF] = false
	k.mu.Unlock()
}

// Pressed reports whether the key (0-F) is currently held.
func (k *Keypad) Pressed(key byte) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys[key&0xF]
}

// Snapshot returns a copy of the whole pad state.
func (k *Keypad) Snapshot() [KeyCount]bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys
}

// FirstPressed returns the lowest-numbered held key, if any.
func (k *Keypad) FirstPressed() (byte, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	for i, pressed := range k.keys {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}
