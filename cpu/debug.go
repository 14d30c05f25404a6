package cpu

import (
	"fmt"
	"strings"
)

// viewer is implemented by memories that render their own debug lines.
type viewer interface {
	View(addr uint16) string
}

// String returns the register file, one register per line.
func (cpu *Cpu) String() (text string) {
	var out strings.Builder
	for reg, value := range cpu.Registers.All() {
		fmt.Fprintf(&out, "% 5s: 0x%04x\n", reg.String(), value)
	}

	return out.String()
}

// ViewMemoryAt renders the eight bytes starting at addr.
func (cpu *Cpu) ViewMemoryAt(addr uint16) string {
	if view, ok := cpu.memory.(viewer); ok {
		return view.View(addr)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "0x%04x:", addr)
	for n := range 8 {
		if int(addr)+n > 0xffff {
			out.WriteString(" --")
			continue
		}
		value, err := cpu.memory.Read8(addr + uint16(n))
		if err != nil {
			out.WriteString(" --")
		} else {
			fmt.Fprintf(&out, " 0x%02x", value)
		}
	}

	return out.String()
}

// StackTop returns the address sp and fp start from.
func (cpu *Cpu) StackTop() uint16 {
	return cpu.stackTop
}

// FrameSize returns the bytes pushed since the current frame was opened.
func (cpu *Cpu) FrameSize() int {
	return cpu.frameSize
}

// Disassemble decodes the instruction at addr without executing it.
// Unknown opcodes decode as a single byte.
func (cpu *Cpu) Disassemble(addr uint16) (text string, size int, err error) {
	code, err := cpu.memory.Read8(addr)
	if err != nil {
		return
	}

	op := Opcode(code)
	size = 1
	if !op.Valid() {
		text = fmt.Sprintf("??? 0x%02x", code)
		return
	}

	args := make([]string, 0, len(op.Operands()))
	for _, operand := range op.Operands() {
		at := addr + uint16(size)
		switch operand {
		case OPERAND_REG:
			var raw uint8
			raw, err = cpu.memory.Read8(at)
			if err != nil {
				return
			}
			args = append(args, SelectRegister(raw).String())
		case OPERAND_LITERAL:
			var value uint16
			value, err = cpu.memory.Read16(at)
			if err != nil {
				return
			}
			args = append(args, fmt.Sprintf("0x%04x", value))
		case OPERAND_ADDRESS:
			var value uint16
			value, err = cpu.memory.Read16(at)
			if err != nil {
				return
			}
			args = append(args, fmt.Sprintf("[0x%04x]", value))
		}
		size += operand.Size()
	}

	text = op.String()
	if len(args) > 0 {
		text += " " + strings.Join(args, ", ")
	}

	return
}
