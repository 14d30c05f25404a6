// Package emulator runs vm16 programs: a memory, a CPU, the loaded program
// listing, and the conditions that stop a run.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/internal"
	"github.com/ezrec/vm16/memory"
	"github.com/ezrec/vm16/program"
)

const (
	MEMORY_SIZE = 256 // Default memory size, in bytes.
)

// Emulator state. Memory + CPU + program.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Memory   *memory.Memory   // Memory shared by code, data and stack.
	Program  *program.Program // Currently loaded program listing.

	Breakpoints map[uint16]bool // Addresses that stop a run.

	until string // Stop expression.
}

// NewEmulator creates an emulator with size bytes of memory.
func NewEmulator(size int) (emu *Emulator, err error) {
	mem, err := memory.New(size)
	if err != nil {
		return
	}

	cp, err := cpu.NewCpu(mem)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:         cp,
		Memory:      mem,
		Program:     program.New("", 0),
		Breakpoints: map[uint16]bool{},
	}

	return
}

// Defines returns an iterator over the registers and machine constants,
// as the stop expression sees them.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	defines := map[string]int{
		"MEMORY_SIZE": emu.Memory.Len(),
		"STACK_TOP":   int(emu.Cpu.StackTop()),
		"FRAME_SIZE":  emu.Cpu.FrameSize(),
		"TICKS":       emu.Cpu.Ticks,
	}

	var registers iter.Seq2[string, uint16] = func(yield func(name string, value uint16) bool) {
		for reg, value := range emu.Cpu.Registers.All() {
			if !yield(reg.String(), value) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(
		internal.IterSeq2Map(registers, func(value uint16) int { return int(value) }),
		maps.All(defines),
	)
}

// Load replaces memory with a program image, and resets the CPU.
func (emu *Emulator) Load(prog *program.Program) (err error) {
	emu.Memory.Clear()

	err = prog.Load(emu.Memory)
	if err != nil {
		return
	}

	emu.Program = prog
	if emu.Verbose {
		log.Printf("emulator: loaded %v, %d bytes at 0x%04x", prog.Name, len(prog.Binary()), prog.Origin)
	}

	emu.Reset()

	return
}

// Reset the CPU, and point it at the program origin.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Registers.SetIndex(cpu.REG_IP, emu.Program.Origin)
}

// SetBreakpoint stops runs when ip reaches addr.
func (emu *Emulator) SetBreakpoint(addr uint16) {
	emu.Breakpoints[addr] = true
}

// ClearBreakpoint removes a breakpoint.
func (emu *Emulator) ClearBreakpoint(addr uint16) {
	delete(emu.Breakpoints, addr)
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() uint16 {
	return emu.Cpu.Registers.Index(cpu.REG_IP)
}

// Instruction returns the disassembly of the instruction at addr.
func (emu *Emulator) Instruction(addr uint16) string {
	text, _, err := emu.Cpu.Disassemble(addr)
	if err != nil {
		return fmt.Sprintf("?? (%v)", err)
	}

	return text
}

// Label returns the program label at addr, if any.
func (emu *Emulator) Label(addr uint16) (label string, ok bool) {
	for name, at := range emu.Program.Labels {
		if at == addr && (!ok || name < label) {
			label, ok = name, true
		}
	}

	return
}

// Tick performs a single tick of the emulator.
// done is set when a breakpoint is reached or the stop expression holds.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	instruction := emu.Instruction(ip)
	code, _ := emu.Memory.Read8(ip)
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Opcode: cpu.Opcode(code), Instruction: instruction, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if err != nil {
		return
	}

	if emu.Breakpoints[emu.Ip()] {
		if emu.Verbose {
			log.Printf("emulator: breakpoint 0x%04x", emu.Ip())
		}
		done = true
		return
	}

	if len(emu.until) != 0 {
		done, err = emu.evalUntil(emu.until)
		if done && emu.Verbose {
			log.Printf("emulator: until %v", emu.until)
		}
	}

	return
}

// Run ticks until done, an error, or limit ticks. A limit of 0 or less
// runs without a limit.
func (emu *Emulator) Run(limit int) (steps int, err error) {
	for limit <= 0 || steps < limit {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		steps++
		if done {
			return
		}
	}

	return
}
