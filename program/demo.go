package program

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/vm16/cpu"
)

const (
	DATA_ADDR       = 0x0080 // Address demo programs keep their data at.
	SUBROUTINE_ADDR = 0x0040 // Address of demo subroutines.
)

var demos = map[string](func() *Program){
	"add":  Add,
	"loop": Loop,
	"call": Call,
	"args": Args,
}

// Demo returns a demo program by name.
func Demo(name string) (prog *Program, ok bool) {
	fn, ok := demos[name]
	if ok {
		prog = fn()
	}
	return
}

// Demos iterates over the demo program names, in order.
func Demos() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(demos)))
}

// Add computes 0x1234 + 0xABCD into acc, and stores it at DATA_ADDR.
func Add() *Program {
	return New("add", 0).
		MovLitReg(0x1234, cpu.REG_R1).
		MovLitReg(0xABCD, cpu.REG_R2).
		AddRegReg(cpu.REG_R1, cpu.REG_R2).
		MovRegMem(cpu.REG_ACC, DATA_ADDR).
		Label("end")
}

// Loop increments the counter at DATA_ADDR until it reaches 3.
func Loop() *Program {
	prog := New("loop", 0).
		MovLitReg(1, cpu.REG_R2).
		Label("loop")

	loop := prog.Labels["loop"]

	return prog.
		MovMemReg(DATA_ADDR, cpu.REG_R1).
		AddRegReg(cpu.REG_R1, cpu.REG_R2).
		MovRegMem(cpu.REG_ACC, DATA_ADDR).
		JmpNotEq(0x0003, loop).
		Label("end")
}

// Call calls a subroutine that clobbers r1 and r4, then adds them.
func Call() *Program {
	return New("call", 0).
		MovLitReg(0x1111, cpu.REG_R1).
		MovLitReg(0x4444, cpu.REG_R4).
		PshLit(0). // No arguments.
		CalLit(SUBROUTINE_ADDR).
		Label("return").
		AddRegReg(cpu.REG_R1, cpu.REG_R4).
		Label("end").
		Org(SUBROUTINE_ADDR).
		Label("subroutine").
		MovLitReg(0xDEAD, cpu.REG_R1).
		MovLitReg(0xBEEF, cpu.REG_R4).
		AddRegReg(cpu.REG_R1, cpu.REG_R4).
		Ret()
}

// Args passes two arguments to a subroutine called through a register.
func Args() *Program {
	return New("args", 0).
		PshLit(0x3333).
		PshLit(0x2222).
		PshLit(2). // Argument count.
		MovLitReg(SUBROUTINE_ADDR, cpu.REG_R5).
		CalReg(cpu.REG_R5).
		Label("return").
		MovRegReg(cpu.REG_ACC, cpu.REG_R2).
		Label("end").
		Org(SUBROUTINE_ADDR).
		Label("subroutine").
		MovLitReg(0x0007, cpu.REG_R1).
		AddRegReg(cpu.REG_R1, cpu.REG_R1).
		Ret()
}
