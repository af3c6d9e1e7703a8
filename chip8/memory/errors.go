package memory

import "fmt"

// ProgramTooLargeError is returned when a program does not fit in the
// memory available above the program load offset.
type ProgramTooLargeError struct {
	Size int
}

func (e ProgramTooLargeError) Error() string {
	return fmt.Sprintf("program of %d bytes exceeds the %d bytes available", e.Size, Size-ProgramStart)
}

// MemoryFaultError is returned on any access outside the addressable
// memory range. The original hardware has no such fault; surfacing it
// beats silently reading garbage.
type MemoryFaultError struct {
	Addr uint16
}

func (e MemoryFaultError) Error() string {
	return fmt.Sprintf("memory access out of range: %#04x", e.Addr)
}
