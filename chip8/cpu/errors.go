package cpu

import "fmt"

// IllegalInstructionError is returned when fetch produces an opcode
// with no documented meaning. The original hardware leaves this
// undefined; surfacing it beats guessing. PC is the address of the
// faulting instruction.
type IllegalInstructionError struct {
	Opcode uint16
	PC     uint16
}

func (e IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction %#04x at %#04x", e.Opcode, e.PC)
}

// StackOverflowError is returned when a call exceeds the stack depth.
type StackOverflowError struct {
	PC uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("call stack overflow at %#04x", e.PC)
}

// StackUnderflowError is returned by a return with no call outstanding.
type StackUnderflowError struct {
	PC uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("call stack underflow at %#04x", e.PC)
}
