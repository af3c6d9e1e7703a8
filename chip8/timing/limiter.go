package timing

import "time"

// FrameRate is the fixed timer/display cadence of the machine.
const FrameRate = 60

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Second / FrameRate
}

// Limiter controls frame rate timing for emulation.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// NewFrameLimiter returns a limiter that paces callers to FrameRate.
func NewFrameLimiter() Limiter {
	l := &frameLimiter{}
	l.Reset()
	return l
}

type frameLimiter struct {
	next time.Time
}

func (l *frameLimiter) WaitForNextFrame() {
	if wait := time.Until(l.next); wait > 0 {
		time.Sleep(wait)
	}

	l.next = l.next.Add(FrameDuration())
	if time.Now().After(l.next) {
		// behind schedule, skip ahead instead of bursting to catch up
		l.next = time.Now().Add(FrameDuration())
	}
}

func (l *frameLimiter) Reset() {
	l.next = time.Now().Add(FrameDuration())
}
