package cpu

import "github.com/valerio/go-chip8/chip8/bit"

// Opcode is one decoded 16-bit instruction word. The fields are the
// standard operand encodings: nnn is the low 12 bits, x and y the
// second and third nibbles, kk the low byte and n the low nibble. Which
// of them an instruction uses depends on its family.
type Opcode struct {
	Raw uint16
	NNN uint16
	X   uint8
	Y   uint8
	KK  uint8
	N   uint8
}

// Decode splits a raw instruction word into its operand fields.
func Decode(raw uint16) Opcode {
	return Opcode{
		Raw: raw,
		NNN: raw & 0x0FFF,
		X:   uint8(raw >> 8 & 0xF),
		Y:   uint8(raw >> 4 & 0xF),
		KK:  bit.Low(raw),
		N:   uint8(raw & 0xF),
	}
}
