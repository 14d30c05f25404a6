package cpu

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrMemorySize      = errors.New(f("memory size unsupported"))
	ErrRegisterUnknown = errors.New(f("register unknown"))
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrFrameCorrupt    = errors.New(f("stack frame corrupt"))
	ErrCpuFaulted      = errors.New(f("cpu faulted"))

	// Instruction decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrOpcodeFetch   = errors.New(f("fetch"))
	ErrOpcodeOperand = errors.New(f("operand"))
)

// ErrMemoryLen is the length of a memory the CPU cannot address.
type ErrMemoryLen int

func (err ErrMemoryLen) Error() string {
	return f("memory length %d not in [2, 0x10000]", int(err))
}

// ErrRegisterName is an unknown register name.
type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("no such register '%v'", string(err))
}

func (err ErrRegisterName) Is(target error) bool {
	return target == ErrRegisterUnknown
}

// ErrFrame describes a stack frame that cannot be unwound.
type ErrFrame struct {
	Fp   uint16 // Frame pointer at the time of the return.
	Size uint16 // Saved frame size read from the stack.
}

func (err *ErrFrame) Error() string {
	return f("frame at 0x%04x has size 0x%04x", err.Fp, err.Size)
}

// ErrStep locates a failed instruction.
type ErrStep struct {
	Ip     uint16 // Address the opcode was fetched from.
	Opcode Opcode // Opcode, if it was fetched.
	Err    error
}

func (err *ErrStep) Error() string {
	return f("ip 0x%04x opcode 0x%02x (%v): %v", err.Ip, uint8(err.Opcode), err.Opcode.String(), err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}
