package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypad_pressRelease(t *testing.T) {
	pad := Keypad{}

	assert.False(t, pad.Pressed(0xA))

	pad.Press(0xA)
	assert.True(t, pad.Pressed(0xA))

	pad.Release(0xA)
	assert.False(t, pad.Pressed(0xA))
}

func TestKeypad_masksToLowNibble(t *testing.T) {
	pad := Keypad{}

	pad.Press(0x1A)
	assert.True(t, pad.Pressed(0xA))
}

func TestKeypad_snapshot(t *testing.T) {
	pad := Keypad{}
	pad.Press(0x0)
	pad.Press(0xF)

	snap := pad.Snapshot()
	assert.True(t, snap[0x0])
	assert.True(t, snap[0xF])
	assert.False(t, snap[0x7])

	// snapshot is a copy, later changes don't show up in it
	pad.Press(0x7)
	assert.False(t, snap[0x7])
}

func TestKeypad_firstPressed(t *testing.T) {
	pad := Keypad{}

	_, ok := pad.FirstPressed()
	assert.False(t, ok)

	pad.Press(0xC)
	pad.Press(0x4)

	key, ok := pad.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x4), key)
}
