package cpu

import (
	"fmt"
)

// Opcode is the one-byte operation code of an instruction.
type Opcode uint8

const (
	MOV_LIT_REG = Opcode(0x10) // reg <- lit16
	MOV_REG_REG = Opcode(0x11) // regTo <- regFrom
	MOV_REG_MEM = Opcode(0x12) // mem[addr16] <- regFrom
	MOV_MEM_REG = Opcode(0x13) // regTo <- mem[addr16]
	ADD_REG_REG = Opcode(0x14) // acc <- regA + regB
	JMP_NOT_EQ  = Opcode(0x15) // if val16 != acc then ip <- addr16
	PSH_LIT     = Opcode(0x17) // push lit16
	PSH_REG     = Opcode(0x18) // push reg
	POP         = Opcode(0x1A) // reg <- pop
	CAL_LIT     = Opcode(0x5E) // call addr16
	CAL_REG     = Opcode(0x5F) // call reg
	RET         = Opcode(0x60) // return
)

// Operand is the kind of an instruction operand.
type Operand int

const (
	OPERAND_REG     = Operand(0) // One byte register selector.
	OPERAND_LITERAL = Operand(1) // Two byte literal.
	OPERAND_ADDRESS = Operand(2) // Two byte memory address.
)

// Size returns the number of bytes the operand occupies.
func (op Operand) Size() int {
	if op == OPERAND_REG {
		return 1
	}
	return 2
}

type opcodeInfo struct {
	name     string
	operands []Operand
}

var opcodeTable = map[Opcode]opcodeInfo{
	MOV_LIT_REG: {"MOV_LIT_REG", []Operand{OPERAND_LITERAL, OPERAND_REG}},
	MOV_REG_REG: {"MOV_REG_REG", []Operand{OPERAND_REG, OPERAND_REG}},
	MOV_REG_MEM: {"MOV_REG_MEM", []Operand{OPERAND_REG, OPERAND_ADDRESS}},
	MOV_MEM_REG: {"MOV_MEM_REG", []Operand{OPERAND_ADDRESS, OPERAND_REG}},
	ADD_REG_REG: {"ADD_REG_REG", []Operand{OPERAND_REG, OPERAND_REG}},
	JMP_NOT_EQ:  {"JMP_NOT_EQ", []Operand{OPERAND_LITERAL, OPERAND_ADDRESS}},
	PSH_LIT:     {"PSH_LIT", []Operand{OPERAND_LITERAL}},
	PSH_REG:     {"PSH_REG", []Operand{OPERAND_REG}},
	POP:         {"POP", []Operand{OPERAND_REG}},
	CAL_LIT:     {"CAL_LIT", []Operand{OPERAND_ADDRESS}},
	CAL_REG:     {"CAL_REG", []Operand{OPERAND_REG}},
	RET:         {"RET", nil},
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() (ok bool) {
	_, ok = opcodeTable[op]
	return
}

// Operands returns the operand layout following the opcode byte.
func (op Opcode) Operands() []Operand {
	return opcodeTable[op].operands
}

// OperandSize returns the number of operand bytes following the opcode byte.
func (op Opcode) OperandSize() (size int) {
	for _, operand := range op.Operands() {
		size += operand.Size()
	}
	return
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	info, ok := opcodeTable[op]
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return info.name
}

// ParseOpcode finds an opcode by mnemonic.
func ParseOpcode(name string) (op Opcode, ok bool) {
	for code, info := range opcodeTable {
		if info.name == name {
			return code, true
		}
	}
	return
}
