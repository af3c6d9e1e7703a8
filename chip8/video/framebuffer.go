package video

const (
	// LoresWidth and LoresHeight are the base display resolution.
	LoresWidth  = 64
	LoresHeight = 32

	// HiresWidth and HiresHeight double both dimensions, used by the
	// high-resolution display mode.
	HiresWidth  = 128
	HiresHeight = 64

	// MaxBrightness is the intensity of a lit pixel.
	MaxBrightness = 0xFF

	// DefaultFadeStep is how much afterglow a dark pixel loses per frame.
	// A pixel toggled off takes about ten frames to go fully dark.
	DefaultFadeStep = 24
)

// Mode selects the active display resolution.
type Mode int

const (
	Lores Mode = iota
	Hires
)

// FrameBuffer holds per-pixel state for the display. Each pixel has a
// logical on/off bit, used for XOR drawing and collision detection, and
// a brightness byte simulating phosphor afterglow: lit pixels sit at
// MaxBrightness, pixels toggled off fade toward zero one step per frame.
// Collision math never looks at the decayed value.
type FrameBuffer struct {
	mode     Mode
	width    int
	height   int
	on       []bool
	glow     []uint8
	fadeStep uint8
}

// NewFrameBuffer creates a framebuffer in the base resolution.
func NewFrameBuffer() *FrameBuffer {
	fb := &FrameBuffer{fadeStep: DefaultFadeStep}
	fb.SetMode(Lores)
	return fb
}

// SetFadeStep sets the per-frame afterglow decrement. MaxBrightness
// turns the fade effect off entirely.
func (fb *FrameBuffer) SetFadeStep(step uint8) {
	fb.fadeStep = step
}

// SetMode switches the display resolution. The display is cleared and
// all afterglow dropped, matching hardware behavior on a mode switch.
func (fb *FrameBuffer) SetMode(mode Mode) {
	fb.mode = mode
	if mode == Hires {
		fb.width, fb.height = HiresWidth, HiresHeight
	} else {
		fb.width, fb.height = LoresWidth, LoresHeight
	}
	fb.on = make([]bool, fb.width*fb.height)
	fb.glow = make([]uint8, fb.width*fb.height)
}

func (fb *FrameBuffer) Mode() Mode {
	return fb.mode
}

func (fb *FrameBuffer) Width() int {
	return fb.width
}

func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Clear switches every pixel logically off. Afterglow is kept so the
// old image fades out instead of vanishing.
func (fb *FrameBuffer) Clear() {
	for i := range fb.on {
		fb.on[i] = false
	}
}

// SetPixel XOR-toggles the logical state of a pixel and reports a
// collision, i.e. a pixel that was on going off.
func (fb *FrameBuffer) SetPixel(x, y int) bool {
	i := y*fb.width + x

	if fb.on[i] {
		fb.on[i] = false
		return true
	}

	fb.on[i] = true
	fb.glow[i] = MaxBrightness
	return false
}

// Pixel returns the logical state of a pixel.
func (fb *FrameBuffer) Pixel(x, y int) bool {
	return fb.on[y*fb.width+x]
}

// Brightness returns the visible intensity of a pixel: full for lit
// pixels, the decaying afterglow otherwise.
func (fb *FrameBuffer) Brightness(x, y int) uint8 {
	i := y*fb.width + x
	if fb.on[i] {
		return MaxBrightness
	}
	return fb.glow[i]
}

// Decay advances the afterglow by one frame. Called exactly once per
// 60Hz frame, after draw operations settle. Lit pixels are held at full
// brightness so their glow starts from the top once they turn off.
func (fb *FrameBuffer) Decay() {
	for i := range fb.glow {
		switch {
		case fb.on[i]:
			fb.glow[i] = MaxBrightness
		case fb.glow[i] <= fb.fadeStep:
			fb.glow[i] = 0
		default:
			fb.glow[i] -= fb.fadeStep
		}
	}
}

// DrawSprite XORs an 8-pixel-wide sprite at (x, y), one byte per row,
// most significant bit leftmost. Start coordinates always wrap; rows
// and columns running past the edge wrap only when wrap is set,
// otherwise they clip. Returns whether any pixel was turned off.
func (fb *FrameBuffer) DrawSprite(x, y int, rows []byte, wrap bool) bool {
	x %= fb.width
	y %= fb.height

	collision := false
	for r, row := range rows {
		if fb.drawRow(x, y+r, uint16(row)<<8, wrap) {
			collision = true
		}
	}
	return collision
}

// DrawWideSprite XORs a 16-pixel-wide sprite at (x, y), one 16-bit word
// per row. Used by the high-resolution 16x16 sprite draw.
func (fb *FrameBuffer) DrawWideSprite(x, y int, rows []uint16, wrap bool) bool {
	x %= fb.width
	y %= fb.height

	collision := false
	for r, row := range rows {
		if fb.drawRow(x, y+r, row, wrap) {
			collision = true
		}
	}
	return collision
}

// drawRow XORs one sprite row, given as left-aligned bits of a 16-bit
// word. x must already be wrapped into range; y may run past the bottom
// edge for the lower rows of a sprite.
func (fb *FrameBuffer) drawRow(x, y int, bits uint16, wrap bool) bool {
	if y >= fb.height {
		if !wrap {
			return false
		}
		y %= fb.height
	}

	collision := false
	for c := 0; c < 16; c++ {
		if bits&(0x8000>>c) == 0 {
			continue
		}

		px := x + c
		if px >= fb.width {
			if !wrap {
				break
			}
			px %= fb.width
		}

		if fb.SetPixel(px, y) {
			collision = true
		}
	}
	return collision
}

// Snapshot deep-copies the brightness grid, safe to hand to a render
// thread.
func (fb *FrameBuffer) Snapshot() []uint8 {
	out := make([]uint8, len(fb.glow))
	for i := range fb.glow {
		if fb.on[i] {
			out[i] = MaxBrightness
		} else {
			out[i] = fb.glow[i]
		}
	}
	return out
}
