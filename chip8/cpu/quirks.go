package cpu

// Quirks capture the documented behavioral differences between hardware
// variants. They are resolved once at machine construction and never
// change mid-run.
type Quirks struct {
	// ShiftUsesVY makes 8xy6/8xyE shift the value of Vy into Vx, the
	// original COSMAC behavior. When off, the shift reads Vx itself.
	ShiftUsesVY bool

	// JumpUsesVX makes Bnnn jump to nnn plus Vx (x being the high
	// nibble of the address) instead of nnn plus V0.
	JumpUsesVX bool

	// IndexIncrement makes Fx55/Fx65 leave I pointing past the block of
	// registers just transferred.
	IndexIncrement bool

	// ResetFlagOnLogic makes 8xy1/8xy2/8xy3 clear VF as a side effect.
	ResetFlagOnLogic bool

	// WrapSprites makes sprites wrap around the display edges instead
	// of clipping.
	WrapSprites bool

	// DisplayWait limits draw operations to one per frame: a second
	// draw in the same frame retries after the next frame boundary.
	DisplayWait bool
}

// CosmacVIP returns the quirk set of the original interpreter.
func CosmacVIP() Quirks {
	return Quirks{
		ShiftUsesVY:      true,
		IndexIncrement:   true,
		ResetFlagOnLogic: true,
		DisplayWait:      true,
	}
}

// SuperChip returns the quirk set of the SCHIP interpreters, the
// variant most later games were written against.
func SuperChip() Quirks {
	return Quirks{
		JumpUsesVX: true,
	}
}
