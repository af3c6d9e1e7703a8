package cpu

import (
	"math/rand"
	"time"

	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/memory"
	"github.com/valerio/go-chip8/chip8/video"
)

const (
	numRegisters = 16
	stackDepth   = 16

	// noKeyWait marks the wait-register field as idle.
	noKeyWait = 0xFF
)

// CPU is the interpreter core: the sixteen V registers, index register,
// program counter, call stack and the fetch-decode-execute cycle over
// the machine's memory, display, timers and keypad.
type CPU struct {
	v     [numRegisters]uint8
	i     uint16
	pc    uint16
	sp    uint8
	stack [stackDepth]uint16

	mem    *memory.RAM
	fb     *video.FrameBuffer
	keypad *memory.Keypad
	timers *memory.Timers

	quirks Quirks
	rng    *rand.Rand

	// waitReg holds the destination register of a pending key-wait
	// instruction, noKeyWait otherwise. While set, Step returns without
	// fetching so the program counter stays parked.
	waitReg uint8

	// drewThisFrame latches after a draw until the next frame boundary.
	// Consulted by the display-wait quirk.
	drewThisFrame bool
}

// New returns an initialized CPU executing from the program start.
func New(mem *memory.RAM, fb *video.FrameBuffer, keypad *memory.Keypad, timers *memory.Timers, quirks Quirks) *CPU {
	return &CPU{
		pc:      memory.ProgramStart,
		mem:     mem,
		fb:      fb,
		keypad:  keypad,
		timers:  timers,
		quirks:  quirks,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		waitReg: noKeyWait,
	}
}

// SeedRandom reseeds the RNG behind the random instruction. Useful for
// deterministic runs.
func (c *CPU) SeedRandom(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Step executes exactly one instruction. It either fully applies the
// instruction's effect or returns a fault, leaving the pre-fault state
// in place. A run in the key-wait sub-state returns immediately with no
// effect until a pressed key is observed.
func (c *CPU) Step() error {
	if c.waitReg != noKeyWait {
		key, ok := c.keypad.FirstPressed()
		if !ok {
			return nil
		}
		c.v[c.waitReg] = key
		c.waitReg = noKeyWait
		return nil
	}

	opPC := c.pc
	op, err := c.fetch()
	if err != nil {
		return err
	}

	return c.execute(op, opPC)
}

// fetch reads the big-endian instruction word at PC and advances PC by
// 2 before dispatch, so control-flow instructions overwrite the already
// advanced value.
func (c *CPU) fetch() (Opcode, error) {
	if c.pc&1 != 0 || c.pc >= memory.Size {
		return Opcode{}, memory.MemoryFaultError{Addr: c.pc}
	}

	hi, err := c.mem.ReadByte(c.pc)
	if err != nil {
		return Opcode{}, err
	}
	lo, err := c.mem.ReadByte(c.pc + 1)
	if err != nil {
		return Opcode{}, err
	}

	c.pc += 2
	return Decode(bit.Combine(hi, lo)), nil
}

// BeginFrame clears the per-frame draw latch. Called once per 60Hz
// frame boundary by the machine.
func (c *CPU) BeginFrame() {
	c.drewThisFrame = false
}

// PC returns the current program counter, for driver diagnostics.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Waiting reports whether the CPU is parked on a key-wait instruction.
func (c *CPU) Waiting() bool {
	return c.waitReg != noKeyWait
}

func (c *CPU) pushReturn(addr, pc uint16) error {
	if c.sp >= stackDepth {
		return StackOverflowError{PC: pc}
	}
	c.stack[c.sp] = addr
	c.sp++
	return nil
}

func (c *CPU) popReturn(pc uint16) error {
	if c.sp == 0 {
		return StackUnderflowError{PC: pc}
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// skip advances PC past the next instruction, for the conditional skips.
func (c *CPU) skip() {
	c.pc += 2
}

// setFlag writes the carry/borrow/collision flag register VF.
func (c *CPU) setFlag(cond bool) {
	if cond {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

// displayThrottled applies the display-wait quirk: a second draw in the
// same frame rewinds PC onto the draw instruction so it retries after
// the next frame boundary.
func (c *CPU) displayThrottled() bool {
	if c.quirks.DisplayWait && c.drewThisFrame {
		c.pc -= 2
		return true
	}
	return false
}
