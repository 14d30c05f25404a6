package emulator

import (
	"errors"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	ErrUntilExpression = errors.New(f("until expression invalid"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip          uint16     // Address of the failing instruction.
	Opcode      cpu.Opcode // Opcode of the failing instruction.
	Instruction string     // Disassembly of the failing instruction.
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("0x%04x %v: %v", err.Ip, err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
