package cpu

import (
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/video"
)

// execute dispatches a decoded instruction. pc is the address the
// instruction was fetched from, carried for fault diagnostics.
func (c *CPU) execute(op Opcode, pc uint16) error {
	switch op.Raw & 0xF000 {
	case 0x0000:
		return c.execSystem(op, pc)

	case 0x1000: // JP nnn
		c.pc = op.NNN

	case 0x2000: // CALL nnn
		if err := c.pushReturn(c.pc, pc); err != nil {
			return err
		}
		c.pc = op.NNN

	case 0x3000: // SE Vx, kk
		if c.v[op.X] == op.KK {
			c.skip()
		}

	case 0x4000: // SNE Vx, kk
		if c.v[op.X] != op.KK {
			c.skip()
		}

	case 0x5000: // SE Vx, Vy
		if op.N != 0 {
			return IllegalInstructionError{Opcode: op.Raw, PC: pc}
		}
		if c.v[op.X] == c.v[op.Y] {
			c.skip()
		}

	case 0x6000: // LD Vx, kk
		c.v[op.X] = op.KK

	case 0x7000: // ADD Vx, kk (no carry flag)
		c.v[op.X] += op.KK

	case 0x8000:
		return c.execALU(op, pc)

	case 0x9000: // SNE Vx, Vy
		if op.N != 0 {
			return IllegalInstructionError{Opcode: op.Raw, PC: pc}
		}
		if c.v[op.X] != c.v[op.Y] {
			c.skip()
		}

	case 0xA000: // LD I, nnn
		c.i = op.NNN

	case 0xB000: // JP V0, nnn
		if c.quirks.JumpUsesVX {
			c.pc = op.NNN + uint16(c.v[op.X])
		} else {
			c.pc = op.NNN + uint16(c.v[0])
		}

	case 0xC000: // RND Vx, kk
		c.v[op.X] = uint8(c.rng.Intn(0x100)) & op.KK

	case 0xD000: // DRW Vx, Vy, n
		return c.execDraw(op)

	case 0xE000:
		switch op.KK {
		case 0x9E: // SKP Vx
			if c.keypad.Pressed(c.v[op.X]) {
				c.skip()
			}
		case 0xA1: // SKNP Vx
			if !c.keypad.Pressed(c.v[op.X]) {
				c.skip()
			}
		default:
			return IllegalInstructionError{Opcode: op.Raw, PC: pc}
		}

	case 0xF000:
		return c.execMisc(op, pc)
	}

	return nil
}

// execSystem handles the 0-family: display control plus the legacy SYS
// instruction.
func (c *CPU) execSystem(op Opcode, pc uint16) error {
	switch op.Raw {
	case 0x00E0: // CLS
		if c.displayThrottled() {
			return nil
		}
		c.fb.Clear()
		c.drewThisFrame = true

	case 0x00EE: // RET
		return c.popReturn(pc)

	case 0x00FE: // LOW
		c.fb.SetMode(video.Lores)

	case 0x00FF: // HIGH
		c.fb.SetMode(video.Hires)

	default:
		// SYS nnn ran native host code on the original machine and is
		// ignored by every later interpreter.
	}

	return nil
}

// execALU handles the 8-family register arithmetic and logic. VF is
// written after the result, so it holds the flag even when x is F.
func (c *CPU) execALU(op Opcode, pc uint16) error {
	vx, vy := c.v[op.X], c.v[op.Y]

	switch op.N {
	case 0x0: // LD Vx, Vy
		c.v[op.X] = vy

	case 0x1: // OR Vx, Vy
		c.v[op.X] = vx | vy
		if c.quirks.ResetFlagOnLogic {
			c.setFlag(false)
		}

	case 0x2: // AND Vx, Vy
		c.v[op.X] = vx & vy
		if c.quirks.ResetFlagOnLogic {
			c.setFlag(false)
		}

	case 0x3: // XOR Vx, Vy
		c.v[op.X] = vx ^ vy
		if c.quirks.ResetFlagOnLogic {
			c.setFlag(false)
		}

	case 0x4: // ADD Vx, Vy
		result, carry := bit.CheckedAdd(vx, vy)
		c.v[op.X] = result
		c.setFlag(carry)

	case 0x5: // SUB Vx, Vy
		result, borrow := bit.CheckedSub(vx, vy)
		c.v[op.X] = result
		c.setFlag(!borrow)

	case 0x6: // SHR Vx {, Vy}
		src := vx
		if c.quirks.ShiftUsesVY {
			src = vy
		}
		c.v[op.X] = src >> 1
		c.setFlag(src&1 == 1)

	case 0x7: // SUBN Vx, Vy
		result, borrow := bit.CheckedSub(vy, vx)
		c.v[op.X] = result
		c.setFlag(!borrow)

	case 0xE: // SHL Vx {, Vy}
		src := vx
		if c.quirks.ShiftUsesVY {
			src = vy
		}
		c.v[op.X] = src << 1
		c.setFlag(bit.IsSet(7, src))

	default:
		return IllegalInstructionError{Opcode: op.Raw, PC: pc}
	}

	return nil
}

// execDraw handles Dxyn: XOR an n-row sprite from memory at I onto the
// display at (Vx, Vy), collision into VF. n of 0 in high-res mode draws
// a 16x16 sprite, two bytes per row.
func (c *CPU) execDraw(op Opcode) error {
	if c.displayThrottled() {
		return nil
	}

	x, y := int(c.v[op.X]), int(c.v[op.Y])
	var collision bool

	if op.N == 0 && c.fb.Mode() == video.Hires {
		rows := make([]uint16, 16)
		for r := range rows {
			hi, err := c.mem.ReadByte(c.i + uint16(2*r))
			if err != nil {
				return err
			}
			lo, err := c.mem.ReadByte(c.i + uint16(2*r+1))
			if err != nil {
				return err
			}
			rows[r] = bit.Combine(hi, lo)
		}
		collision = c.fb.DrawWideSprite(x, y, rows, c.quirks.WrapSprites)
	} else {
		rows := make([]byte, op.N)
		for r := range rows {
			b, err := c.mem.ReadByte(c.i + uint16(r))
			if err != nil {
				return err
			}
			rows[r] = b
		}
		collision = c.fb.DrawSprite(x, y, rows, c.quirks.WrapSprites)
	}

	c.setFlag(collision)
	c.drewThisFrame = true
	return nil
}

// execMisc handles the F-family: timers, key wait, index arithmetic,
// BCD and the register file transfers.
func (c *CPU) execMisc(op Opcode, pc uint16) error {
	switch op.KK {
	case 0x07: // LD Vx, DT
		c.v[op.X] = c.timers.Delay()

	case 0x0A: // LD Vx, K
		c.waitReg = op.X

	case 0x15: // LD DT, Vx
		c.timers.SetDelay(c.v[op.X])

	case 0x18: // LD ST, Vx
		c.timers.SetSound(c.v[op.X])

	case 0x1E: // ADD I, Vx
		c.i += uint16(c.v[op.X])

	case 0x29: // LD F, Vx
		c.i = c.mem.FontAddress(c.v[op.X])

	case 0x33: // LD B, Vx
		vx := c.v[op.X]
		if err := c.mem.WriteByte(c.i, vx/100); err != nil {
			return err
		}
		if err := c.mem.WriteByte(c.i+1, vx/10%10); err != nil {
			return err
		}
		if err := c.mem.WriteByte(c.i+2, vx%10); err != nil {
			return err
		}

	case 0x55: // LD [I], Vx
		for r := uint16(0); r <= uint16(op.X); r++ {
			if err := c.mem.WriteByte(c.i+r, c.v[r]); err != nil {
				return err
			}
		}
		if c.quirks.IndexIncrement {
			c.i += uint16(op.X) + 1
		}

	case 0x65: // LD Vx, [I]
		for r := uint16(0); r <= uint16(op.X); r++ {
			b, err := c.mem.ReadByte(c.i + r)
			if err != nil {
				return err
			}
			c.v[r] = b
		}
		if c.quirks.IndexIncrement {
			c.i += uint16(op.X) + 1
		}

	default:
		return IllegalInstructionError{Opcode: op.Raw, PC: pc}
	}

	return nil
}
