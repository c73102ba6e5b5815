package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when CALL is executed with a full call stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when RET is executed with an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrROMTooLarge is returned when a ROM does not fit between the load address and the end of memory.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrEmptyROM is returned when a ROM contains no bytes.
	ErrEmptyROM = errors.New("rom is empty")
)

// InvalidOpcodeError reports a word that matches no known instruction.
type InvalidOpcodeError struct {
	Opcode  uint16
	Address uint16
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%04X at 0x%03X", e.Opcode, e.Address)
}

// MemoryError reports an access outside of addressable memory or a write into
// the read-only font region.
type MemoryError struct {
	Address  uint16
	ReadOnly bool
}

func (e *MemoryError) Error() string {
	if e.ReadOnly {
		return fmt.Sprintf("write to read-only memory at 0x%03X", e.Address)
	}
	return fmt.Sprintf("memory access out of bounds at 0x%X", e.Address)
}

// ExecError wraps a fault raised while executing the instruction at Address.
type ExecError struct {
	Address uint16
	Opcode  uint16
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing 0x%04X at 0x%03X: %v", e.Opcode, e.Address, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
