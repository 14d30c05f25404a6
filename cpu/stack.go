package cpu

import (
	"errors"
)

const (
	STATE_WORDS = 10              // r1-r8, return ip and frame size.
	STATE_SIZE  = STATE_WORDS * 2 // Bytes pushed by a call.
)

// push writes a word at sp and moves sp down.
func (cpu *Cpu) push(value uint16) (err error) {
	sp := cpu.Registers.Index(REG_SP)
	if sp < 2 {
		err = ErrStackOverflow
		return
	}

	err = cpu.memory.Write16(sp, value)
	if err != nil {
		return
	}

	cpu.Registers.SetIndex(REG_SP, sp-2)
	cpu.frameSize += 2

	return
}

// pop moves sp up and reads the word there.
func (cpu *Cpu) pop() (value uint16, err error) {
	sp := cpu.Registers.Index(REG_SP)
	if int(sp)+2 > int(cpu.stackTop) {
		err = ErrStackUnderflow
		return
	}

	next := sp + 2
	value, err = cpu.memory.Read16(next)
	if err != nil {
		return
	}

	cpu.Registers.SetIndex(REG_SP, next)
	cpu.frameSize -= 2

	return
}

// pushState saves r1-r8, ip and the frame size, then opens a new frame.
func (cpu *Cpu) pushState() (err error) {
	if cpu.Registers.Index(REG_SP) < STATE_SIZE {
		err = ErrStackOverflow
		return
	}

	for reg := REG_R1; reg <= REG_R8; reg++ {
		err = cpu.push(cpu.Registers.Index(reg))
		if err != nil {
			return
		}
	}

	err = cpu.push(cpu.Registers.Index(REG_IP))
	if err != nil {
		return
	}

	// The size includes the size word itself.
	err = cpu.push(uint16(cpu.frameSize + 2))
	if err != nil {
		return
	}

	cpu.Registers.SetIndex(REG_FP, cpu.Registers.Index(REG_SP))
	cpu.frameSize = 0

	return
}

// popState unwinds the current frame: it restores ip and r1-r8, drops the
// arguments the caller pushed, and points fp back at the caller's frame.
func (cpu *Cpu) popState() (err error) {
	fp := cpu.Registers.Index(REG_FP)
	cpu.Registers.SetIndex(REG_SP, fp)

	size, err := cpu.pop()
	if err != nil {
		return
	}

	if size%2 != 0 || size < STATE_SIZE || int(fp)+int(size) > int(cpu.stackTop) {
		err = errors.Join(ErrFrameCorrupt, &ErrFrame{Fp: fp, Size: size})
		return
	}

	// Bytes of the caller's frame still on the stack, after the size word.
	cpu.frameSize = int(size) - 2

	ip, err := cpu.pop()
	if err != nil {
		return
	}
	cpu.Registers.SetIndex(REG_IP, ip)

	for reg := REG_R8; reg >= REG_R1; reg-- {
		var value uint16
		value, err = cpu.pop()
		if err != nil {
			return
		}
		cpu.Registers.SetIndex(reg, value)
	}

	args, err := cpu.pop()
	if err != nil {
		return
	}

	for range args {
		_, err = cpu.pop()
		if err != nil {
			return
		}
	}

	cpu.Registers.SetIndex(REG_FP, fp+size)

	return
}
