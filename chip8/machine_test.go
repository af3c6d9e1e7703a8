package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-chip8/chip8/video"
)

func TestMachine_clearAndDrawGlyph(t *testing.T) {
	m := New(Options{})

	// clear the screen, then draw the built-in glyph for 0 at (0,0):
	// I defaults to 0, which is where the glyph lives.
	require.NoError(t, m.LoadProgram([]byte{
		0x00, 0xE0, // CLS
		0xD0, 0x15, // DRW V0, V1, 5
	}))

	require.NoError(t, m.Step())
	require.NoError(t, m.Step())
	m.AdvanceFrame()

	glyph := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	frame := m.CurrentFrame()
	require.Equal(t, video.LoresWidth, frame.Width)
	require.Equal(t, video.LoresHeight, frame.Height)

	for y, row := range glyph {
		for x := 0; x < 8; x++ {
			want := uint8(0)
			if row&(0x80>>x) != 0 {
				// drawn this frame, so still at full brightness
				want = video.MaxBrightness
			}
			assert.Equal(t, want, frame.Brightness[y*frame.Width+x],
				"pixel (%d,%d)", x, y)
		}
	}
}

func TestMachine_timersDecayPerFrame(t *testing.T) {
	m := New(Options{})
	require.NoError(t, m.LoadProgram([]byte{
		0x61, 0x3C, // LD V1, 60
		0xF1, 0x15, // LD DT, V1
		0xF1, 0x18, // LD ST, V1
		0xF2, 0x07, // LD V2, DT
	}))

	require.NoError(t, m.Step())
	require.NoError(t, m.Step())
	require.NoError(t, m.Step())

	for i := 0; i < 25; i++ {
		m.AdvanceFrame()
	}

	// V2 <- DT reads 60 - 25
	require.NoError(t, m.Step())
	assert.True(t, m.SoundActive())

	for i := 0; i < 40; i++ {
		m.AdvanceFrame()
	}
	assert.False(t, m.SoundActive())
}

func TestMachine_soundPublishedWithFrame(t *testing.T) {
	m := New(Options{})
	require.NoError(t, m.LoadProgram([]byte{
		0x61, 0x02, // LD V1, 2
		0xF1, 0x18, // LD ST, V1
	}))

	require.NoError(t, m.Step())
	require.NoError(t, m.Step())

	// not published until the frame boundary
	assert.False(t, m.CurrentFrame().Sound)

	m.AdvanceFrame()
	assert.True(t, m.CurrentFrame().Sound)

	m.AdvanceFrame()
	assert.False(t, m.CurrentFrame().Sound)
}

func TestMachine_frameSnapshotIsStable(t *testing.T) {
	m := New(Options{})
	require.NoError(t, m.LoadProgram([]byte{
		0xD0, 0x15, // DRW V0, V1, 5 (glyph for 0 at I=0)
	}))

	before := m.CurrentFrame()
	require.NoError(t, m.Step())

	// the draw is not visible until AdvanceFrame publishes
	assert.Equal(t, uint8(0), before.Brightness[0])
	assert.Equal(t, uint8(0), m.CurrentFrame().Brightness[0])

	m.AdvanceFrame()
	assert.Equal(t, uint8(video.MaxBrightness), m.CurrentFrame().Brightness[0])

	// and the old snapshot still reads as it did
	assert.Equal(t, uint8(0), before.Brightness[0])
}

func TestMachine_loadProgramTooLarge(t *testing.T) {
	m := New(Options{})

	err := m.LoadProgram(make([]byte, 4096))
	assert.Error(t, err)
}

func TestMachine_runFrame(t *testing.T) {
	m := New(Options{})
	require.NoError(t, m.LoadProgram([]byte{
		0x61, 0x05, // LD V1, 5
		0xF1, 0x15, // LD DT, V1
		0x12, 0x04, // JP 0x204 (spin)
	}))

	require.NoError(t, m.RunFrame(12))

	assert.Equal(t, uint16(0x204), m.PC())
}

func TestMachine_independentInstances(t *testing.T) {
	a := New(Options{})
	b := New(Options{})

	require.NoError(t, a.LoadProgram([]byte{0x61, 0x11})) // LD V1, 0x11
	require.NoError(t, b.LoadProgram([]byte{0x12, 0x00})) // JP 0x200

	require.NoError(t, a.Step())
	require.NoError(t, b.Step())

	assert.Equal(t, uint16(0x202), a.PC())
	assert.Equal(t, uint16(0x200), b.PC())
}
