package cpu

import (
	"encoding/binary"
	"iter"
)

// Register is the position of a register in the register file.
type Register int

const (
	REG_IP  = Register(0)  // ip
	REG_ACC = Register(1)  // acc
	REG_R1  = Register(2)  // r1
	REG_R2  = Register(3)  // r2
	REG_R3  = Register(4)  // r3
	REG_R4  = Register(5)  // r4
	REG_R5  = Register(6)  // r5
	REG_R6  = Register(7)  // r6
	REG_R7  = Register(8)  // r7
	REG_R8  = Register(9)  // r8
	REG_SP  = Register(10) // sp
	REG_FP  = Register(11) // fp

	REGISTER_COUNT = 12 // Number of registers.
)

var registerNames = [REGISTER_COUNT]string{
	"ip", "acc",
	"r1", "r2", "r3", "r4",
	"r5", "r6", "r7", "r8",
	"sp", "fp",
}

var registerMap = func() map[string]Register {
	regs := make(map[string]Register, REGISTER_COUNT)
	for n, name := range registerNames {
		regs[name] = Register(n)
	}
	return regs
}()

// String returns the register name.
func (reg Register) String() string {
	if reg < 0 || reg >= REGISTER_COUNT {
		return "r?"
	}
	return registerNames[reg]
}

// ParseRegister finds a register by name.
func ParseRegister(name string) (reg Register, err error) {
	reg, ok := registerMap[name]
	if !ok {
		err = ErrRegisterName(name)
	}
	return
}

// SelectRegister reduces a raw operand byte to a register.
func SelectRegister(raw uint8) Register {
	return Register(int(raw) % REGISTER_COUNT)
}

// Registers is the register file. Register n is stored big-endian at
// byte offset n*2.
type Registers struct {
	data [REGISTER_COUNT * 2]byte
}

// Index returns the value of a register.
func (rf *Registers) Index(reg Register) uint16 {
	return binary.BigEndian.Uint16(rf.data[reg*2:])
}

// SetIndex sets the value of a register.
func (rf *Registers) SetIndex(reg Register, value uint16) {
	binary.BigEndian.PutUint16(rf.data[reg*2:], value)
}

// Get returns the value of a register by name.
func (rf *Registers) Get(name string) (value uint16, err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	value = rf.Index(reg)
	return
}

// Set sets the value of a register by name.
func (rf *Registers) Set(name string, value uint16) (err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	rf.SetIndex(reg, value)
	return
}

// Reset zeros all registers.
func (rf *Registers) Reset() {
	clear(rf.data[:])
}

// All iterates over the registers in storage order.
func (rf *Registers) All() iter.Seq2[Register, uint16] {
	return func(yield func(reg Register, value uint16) bool) {
		for n := range REGISTER_COUNT {
			reg := Register(n)
			if !yield(reg, rf.Index(reg)) {
				return
			}
		}
	}
}
