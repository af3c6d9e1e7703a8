package memory

// Timers holds the two 8-bit hardware counters. Both decrement toward
// zero at the 60Hz frame cadence, never per instruction.
type Timers struct {
	delay byte
	sound byte
}

// Tick decrements both counters by one if nonzero. Call exactly once
// per 60Hz frame.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

func (t *Timers) Delay() byte {
	return t.delay
}

func (t *Timers) SetDelay(value byte) {
	t.delay = value
}

func (t *Timers) SetSound(value byte) {
	t.sound = value
}

// SoundActive reports whether the sound timer is running. How the host
// surfaces it (beep, flash, glyph) is its own business.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}
