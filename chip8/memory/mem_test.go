package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAM_fontSprites(t *testing.T) {
	ram := New()

	// glyph for 0 lives at address 0
	b, err := ram.ReadByte(0)
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// glyph for F starts at 75
	assert.Equal(t, uint16(75), ram.FontAddress(0xF))
	b, err = ram.ReadByte(75)
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), b)

	// digit is masked to its low nibble
	assert.Equal(t, ram.FontAddress(0x3), ram.FontAddress(0x13))
}

func TestRAM_LoadProgram(t *testing.T) {
	ram := New()
	program := []byte{0x00, 0xE0, 0xA2, 0x30}

	require.NoError(t, ram.LoadProgram(program))
	assert.Equal(t, 4, ram.ProgramSize())

	for i, want := range program {
		got, err := ram.ReadByte(uint16(ProgramStart + i))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRAM_LoadProgramTooLarge(t *testing.T) {
	ram := New()

	program := make([]byte, Size-ProgramStart+1)
	for i := range program {
		program[i] = 0xAA
	}

	err := ram.LoadProgram(program)

	var tooLarge ProgramTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, len(program), tooLarge.Size)

	// memory must be left unmodified
	for addr := ProgramStart; addr < Size; addr++ {
		b, err := ram.ReadByte(uint16(addr))
		require.NoError(t, err)
		assert.Equal(t, byte(0), b)
	}
}

func TestRAM_LoadProgramMaxSize(t *testing.T) {
	ram := New()
	assert.NoError(t, ram.LoadProgram(make([]byte, Size-ProgramStart)))
}

func TestRAM_boundsChecks(t *testing.T) {
	ram := New()

	_, err := ram.ReadByte(Size)
	var fault MemoryFaultError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, uint16(Size), fault.Addr)

	err = ram.WriteByte(0xFFFF, 1)
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, uint16(0xFFFF), fault.Addr)

	// last valid address is fine
	require.NoError(t, ram.WriteByte(Size-1, 0x42))
	b, err := ram.ReadByte(Size - 1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)
}
