// Package program encodes vm16 instructions into memory images.
//
// A Program is a listing: each emitted instruction records the address it
// was placed at, so a running CPU's ip can be mapped back to it.
package program

import (
	"iter"

	"github.com/ezrec/vm16/cpu"
)

// Loader accepts a memory image.
type Loader interface {
	Load(addr uint16, data []byte) error
}

// Op is one emitted instruction, or a run of data bytes.
type Op struct {
	Ip     uint16     // Address of the first byte.
	Opcode cpu.Opcode // Opcode, if Data is false.
	Data   bool       // Set for raw data.
	Codes  []byte     // Encoded bytes, opcode first.
}

// Program is a memory image under construction.
type Program struct {
	Name   string // Short name of the program.
	Origin uint16 // Load address of the first byte.
	Ops    []Op   // Emitted instructions and data, in address order.

	Labels map[string]uint16 // Named addresses.
}

// New creates an empty program loaded at origin.
func New(name string, origin uint16) *Program {
	return &Program{
		Name:   name,
		Origin: origin,
		Labels: map[string]uint16{},
	}
}

// Here returns the address of the next emitted byte.
func (prog *Program) Here() uint16 {
	if len(prog.Ops) == 0 {
		return prog.Origin
	}

	last := prog.Ops[len(prog.Ops)-1]
	return last.Ip + uint16(len(last.Codes))
}

// Label names the current address.
func (prog *Program) Label(name string) *Program {
	if prog.Labels == nil {
		prog.Labels = map[string]uint16{}
	}
	prog.Labels[name] = prog.Here()
	return prog
}

// Org pads with zero bytes up to addr. Moving backwards is ignored.
func (prog *Program) Org(addr uint16) *Program {
	here := prog.Here()
	if addr > here {
		prog.Bytes(make([]byte, addr-here)...)
	}
	return prog
}

// Bytes emits raw data bytes.
func (prog *Program) Bytes(data ...byte) *Program {
	prog.Ops = append(prog.Ops, Op{
		Ip:    prog.Here(),
		Data:  true,
		Codes: data,
	})
	return prog
}

// Word emits a big-endian data word.
func (prog *Program) Word(value uint16) *Program {
	return prog.Bytes(byte(value>>8), byte(value))
}

// emit appends an instruction. Operands are bytes (register selectors) or
// uint16 values (literals and addresses), in encoding order.
func (prog *Program) emit(op cpu.Opcode, operands ...any) *Program {
	codes := []byte{byte(op)}
	for _, operand := range operands {
		switch value := operand.(type) {
		case cpu.Register:
			codes = append(codes, byte(value))
		case uint8:
			codes = append(codes, value)
		case uint16:
			codes = append(codes, byte(value>>8), byte(value))
		default:
			panic("program: operand must be a register, byte or word")
		}
	}

	prog.Ops = append(prog.Ops, Op{
		Ip:     prog.Here(),
		Opcode: op,
		Codes:  codes,
	})
	return prog
}

// MovLitReg emits reg <- literal.
func (prog *Program) MovLitReg(literal uint16, reg cpu.Register) *Program {
	return prog.emit(cpu.MOV_LIT_REG, literal, reg)
}

// MovRegReg emits to <- from.
func (prog *Program) MovRegReg(from, to cpu.Register) *Program {
	return prog.emit(cpu.MOV_REG_REG, from, to)
}

// MovRegMem emits mem[addr] <- from.
func (prog *Program) MovRegMem(from cpu.Register, addr uint16) *Program {
	return prog.emit(cpu.MOV_REG_MEM, from, addr)
}

// MovMemReg emits to <- mem[addr].
func (prog *Program) MovMemReg(addr uint16, to cpu.Register) *Program {
	return prog.emit(cpu.MOV_MEM_REG, addr, to)
}

// AddRegReg emits acc <- a + b.
func (prog *Program) AddRegReg(a, b cpu.Register) *Program {
	return prog.emit(cpu.ADD_REG_REG, a, b)
}

// JmpNotEq emits a jump to addr taken when value differs from acc.
func (prog *Program) JmpNotEq(value uint16, addr uint16) *Program {
	return prog.emit(cpu.JMP_NOT_EQ, value, addr)
}

// PshLit emits a push of a literal.
func (prog *Program) PshLit(literal uint16) *Program {
	return prog.emit(cpu.PSH_LIT, literal)
}

// PshReg emits a push of a register.
func (prog *Program) PshReg(reg cpu.Register) *Program {
	return prog.emit(cpu.PSH_REG, reg)
}

// Pop emits reg <- pop.
func (prog *Program) Pop(reg cpu.Register) *Program {
	return prog.emit(cpu.POP, reg)
}

// CalLit emits a call to addr.
func (prog *Program) CalLit(addr uint16) *Program {
	return prog.emit(cpu.CAL_LIT, addr)
}

// CalReg emits a call to the address held in reg.
func (prog *Program) CalReg(reg cpu.Register) *Program {
	return prog.emit(cpu.CAL_REG, reg)
}

// Ret emits a return.
func (prog *Program) Ret() *Program {
	return prog.emit(cpu.RET)
}

// Raw emits an instruction with raw operand bytes, bypassing the operand layout.
func (prog *Program) Raw(op cpu.Opcode, operands ...uint8) *Program {
	args := make([]any, len(operands))
	for n, operand := range operands {
		args[n] = operand
	}
	return prog.emit(op, args...)
}

// Codes iterates over every byte of the program with its address.
func (prog *Program) Codes() iter.Seq2[uint16, byte] {
	return func(yield func(ip uint16, code byte) bool) {
		for _, op := range prog.Ops {
			for n, code := range op.Codes {
				if !yield(op.Ip+uint16(n), code) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image, starting at Origin.
func (prog *Program) Binary() (bins []byte) {
	for _, code := range prog.Codes() {
		bins = append(bins, code)
	}

	return
}

// Load writes the memory image at Origin.
func (prog *Program) Load(mem Loader) error {
	return mem.Load(prog.Origin, prog.Binary())
}

// Debug finds the instruction covering ip.
func (prog *Program) Debug(ip uint16) (op *Op, ok bool) {
	for n := range prog.Ops {
		at := &prog.Ops[n]
		if int(ip) >= int(at.Ip) && int(ip) < int(at.Ip)+len(at.Codes) {
			return at, true
		}
	}

	return
}
