package memory

const (
	// Size is the total amount of addressable memory.
	Size = 0x1000

	// ProgramStart is the offset programs are loaded at. Everything below
	// it is reserved for the interpreter, which on real hardware held the
	// interpreter code itself and the built-in font sprites.
	ProgramStart = 0x200

	fontSpriteSize = 5
)

// fontSprites holds the 16 built-in hex digit glyphs, 5 bytes each,
// written at address 0 when the machine is created.
var fontSprites = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// RAM is the 4KB address space of the machine. The font area is written
// once on creation, the program once at load time; after that only the
// store instructions mutate it.
type RAM struct {
	data        [Size]byte
	programSize int
}

// New creates a zero-filled RAM with the font sprites in place.
func New() *RAM {
	r := &RAM{}
	copy(r.data[:], fontSprites[:])
	return r
}

// LoadProgram writes the program bytes starting at ProgramStart.
// Memory is left unmodified when the program does not fit.
func (r *RAM) LoadProgram(data []byte) error {
	if len(data) > Size-ProgramStart {
		return ProgramTooLargeError{Size: len(data)}
	}

	copy(r.data[ProgramStart:], data)
	r.programSize = len(data)
	return nil
}

// ProgramSize returns the number of program bytes loaded.
func (r *RAM) ProgramSize() int {
	return r.programSize
}

// ReadByte returns the byte at addr, bounds-checked.
func (r *RAM) ReadByte(addr uint16) (byte, error) {
	if addr >= Size {
		return 0, MemoryFaultError{Addr: addr}
	}
	return r.data[addr], nil
}

// WriteByte stores value at addr, bounds-checked.
func (r *RAM) WriteByte(addr uint16, value byte) error {
	if addr >= Size {
		return MemoryFaultError{Addr: addr}
	}
	r.data[addr] = value
	return nil
}

// FontAddress returns the address of the built-in sprite for a hex digit.
func (r *RAM) FontAddress(digit byte) uint16 {
	return uint16(digit&0xF) * fontSpriteSize
}
