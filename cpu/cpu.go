package cpu

import (
	"errors"
	"log"
)

// Cpu is the simulation context for the vm16 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Strict  bool // Set to fail on unknown opcodes, instead of ignoring them.

	Registers Registers // Register file.

	Ticks int // Instructions executed since reset.

	memory    Memory // Program, data and stack memory.
	stackTop  uint16 // Initial sp and fp.
	frameSize int    // Bytes pushed since the current frame was opened.
	fault     error  // Set once a step fails.
}

// NewCpu creates a CPU executing from mem.
func NewCpu(mem Memory) (cpu *Cpu, err error) {
	size := mem.Len()
	if size < 2 || size > 0x10000 {
		err = errors.Join(ErrMemorySize, ErrMemoryLen(size))
		return
	}

	cpu = &Cpu{
		memory:   mem,
		stackTop: uint16(size - 2),
	}

	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears all registers, the frame counter and any fault.
// - Points sp and fp at the top of the stack.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Registers.SetIndex(REG_SP, cpu.stackTop)
	cpu.Registers.SetIndex(REG_FP, cpu.stackTop)
	cpu.frameSize = 0
	cpu.fault = nil
	cpu.Ticks = 0
}

// Memory returns the memory the CPU executes from.
func (cpu *Cpu) Memory() Memory {
	return cpu.memory
}

// GetRegister returns the value of a register by name.
func (cpu *Cpu) GetRegister(name string) (value uint16, err error) {
	return cpu.Registers.Get(name)
}

// SetRegister sets the value of a register by name.
func (cpu *Cpu) SetRegister(name string, value uint16) (err error) {
	return cpu.Registers.Set(name, value)
}

// Fault returns the error that stopped the CPU, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// fetch8 reads the byte at ip and advances ip.
func (cpu *Cpu) fetch8() (value uint8, err error) {
	ip := cpu.Registers.Index(REG_IP)
	value, err = cpu.memory.Read8(ip)
	if err != nil {
		return
	}

	cpu.Registers.SetIndex(REG_IP, ip+1)
	return
}

// fetch16 reads the word at ip and advances ip.
func (cpu *Cpu) fetch16() (value uint16, err error) {
	ip := cpu.Registers.Index(REG_IP)
	value, err = cpu.memory.Read16(ip)
	if err != nil {
		return
	}

	cpu.Registers.SetIndex(REG_IP, ip+2)
	return
}

// fetchRegister reads a register selector operand.
func (cpu *Cpu) fetchRegister() (reg Register, err error) {
	raw, err := cpu.fetch8()
	if err != nil {
		return
	}

	reg = SelectRegister(raw)
	return
}

// Step executes a single instruction.
//
// A failed step leaves the CPU faulted: the returned *ErrStep names the
// instruction, and every later Step fails with ErrCpuFaulted until Reset.
func (cpu *Cpu) Step() (err error) {
	if cpu.fault != nil {
		err = errors.Join(ErrCpuFaulted, cpu.fault)
		return
	}

	ip := cpu.Registers.Index(REG_IP)
	var op Opcode

	defer func() {
		if err != nil {
			err = &ErrStep{Ip: ip, Opcode: op, Err: err}
			cpu.fault = err
			if cpu.Verbose {
				log.Printf("cpu: %v", err)
			}
		}
	}()

	code, err := cpu.fetch8()
	if err != nil {
		err = errors.Join(ErrOpcodeFetch, err)
		return
	}
	op = Opcode(code)

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v", ip, op)
	}

	err = cpu.Execute(op)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes an opcode whose operands follow at ip.
func (cpu *Cpu) Execute(op Opcode) (err error) {
	rf := &cpu.Registers

	// Operand fetch failures are reported as such.
	operand := func(e error) error {
		return errors.Join(ErrOpcodeOperand, e)
	}

	switch op {
	case MOV_LIT_REG:
		var literal uint16
		var reg Register
		literal, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		reg, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		rf.SetIndex(reg, literal)
	case MOV_REG_REG:
		var from, to Register
		from, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		to, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		rf.SetIndex(to, rf.Index(from))
	case MOV_REG_MEM:
		var from Register
		var addr uint16
		from, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		addr, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		err = cpu.memory.Write16(addr, rf.Index(from))
	case MOV_MEM_REG:
		var addr, value uint16
		var to Register
		addr, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		to, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		value, err = cpu.memory.Read16(addr)
		if err != nil {
			return
		}
		rf.SetIndex(to, value)
	case ADD_REG_REG:
		var a, b Register
		a, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		b, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		rf.SetIndex(REG_ACC, rf.Index(a)+rf.Index(b))
	case JMP_NOT_EQ:
		var value, addr uint16
		value, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		addr, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		if value != rf.Index(REG_ACC) {
			rf.SetIndex(REG_IP, addr)
		}
	case PSH_LIT:
		var literal uint16
		literal, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		err = cpu.push(literal)
	case PSH_REG:
		var reg Register
		reg, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		err = cpu.push(rf.Index(reg))
	case POP:
		var reg Register
		var value uint16
		reg, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		value, err = cpu.pop()
		if err != nil {
			return
		}
		rf.SetIndex(reg, value)
	case CAL_LIT:
		var addr uint16
		addr, err = cpu.fetch16()
		if err != nil {
			return operand(err)
		}
		err = cpu.pushState()
		if err != nil {
			return
		}
		rf.SetIndex(REG_IP, addr)
	case CAL_REG:
		var reg Register
		reg, err = cpu.fetchRegister()
		if err != nil {
			return operand(err)
		}
		addr := rf.Index(reg)
		err = cpu.pushState()
		if err != nil {
			return
		}
		rf.SetIndex(REG_IP, addr)
	case RET:
		err = cpu.popState()
	default:
		if cpu.Strict {
			err = ErrOpcodeUnknown
			return
		}
		if cpu.Verbose {
			log.Printf("cpu: ignoring %v", op)
		}
	}

	return
}
