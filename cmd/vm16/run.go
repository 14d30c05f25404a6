package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/emulator"
	"github.com/ezrec/vm16/internal/logger"
	"github.com/ezrec/vm16/program"
)

var ErrProgramUnknown = errors.New("unknown demo program")

func doRun(context *cli.Context) (err error) {
	w := context.App.Writer

	if context.Bool(ListFlag.Name) {
		for name := range program.Demos() {
			fmt.Fprintln(w, name)
		}
		return
	}

	l, closer, err := logger.New(context.String(LogFlag.Name))
	if err != nil {
		return
	}
	defer closer.Close()

	tui := context.Bool(TuiFlag.Name)
	if tui && len(context.String(LogFlag.Name)) == 0 {
		// The terminal belongs to the debugger.
		l.SetOutput(io.Discard)
	}
	log.SetOutput(l.Writer())
	log.SetPrefix(l.Prefix())
	log.SetFlags(l.Flags())

	emu, err := newEmulator(context)
	if err != nil {
		return
	}

	limit := context.Int(StepsFlag.Name)

	switch {
	case tui:
		err = runTui(emu, limit)
	case context.Bool(StepFlag.Name):
		err = runLines(emu, context.App.Reader, w)
	default:
		err = runBatch(emu, limit, w)
	}

	return
}

// newEmulator builds an emulator from the command line.
func newEmulator(context *cli.Context) (emu *emulator.Emulator, err error) {
	size, err := MemoryFlag.Fetch(context)
	if err != nil {
		return
	}

	prog, err := loadProgram(context)
	if err != nil {
		return
	}

	emu, err = emulator.NewEmulator(size)
	if err != nil {
		return
	}

	emu.Verbose = context.Bool(VerboseFlag.Name)
	emu.Strict = context.Bool(StrictFlag.Name)

	err = emu.Load(prog)
	if err != nil {
		return
	}

	addrs, err := BreakFlag.Fetch(context)
	if err != nil {
		return
	}
	for _, addr := range addrs {
		emu.SetBreakpoint(addr)
	}

	// Programs stop at their end label.
	if end, ok := prog.Labels["end"]; ok {
		emu.SetBreakpoint(end)
	}

	err = emu.Until(context.String(UntilFlag.Name))
	if err != nil {
		return
	}

	return
}

// loadProgram returns the demo, or raw image, named on the command line.
func loadProgram(context *cli.Context) (prog *program.Program, err error) {
	path := context.String(BinaryFlag.Name)
	if len(path) == 0 {
		name := context.String(ProgramFlag.Name)
		var ok bool
		prog, ok = program.Demo(name)
		if !ok {
			err = fmt.Errorf("%w: %v", ErrProgramUnknown, name)
		}
		return
	}

	origin, err := OriginFlag.Fetch(context)
	if err != nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	prog = program.New(path, origin).Bytes(data...)
	return
}

// dump writes the registers and the memory around ip and sp.
func dump(w io.Writer, emu *emulator.Emulator) {
	fmt.Fprint(w, emu.Cpu.String())
	fmt.Fprintf(w, "   ip: %v\n", emu.Instruction(emu.Ip()))
	fmt.Fprintln(w, emu.ViewMemoryAt(emu.Ip()))
	fmt.Fprintln(w, emu.ViewMemoryAt(emu.Registers.Index(cpu.REG_SP)))
}

// runBatch runs to completion, and reports the final state.
func runBatch(emu *emulator.Emulator, limit int, w io.Writer) (err error) {
	start := time.Now()
	steps, err := emu.Run(limit)
	elapsed := time.Since(start)

	dump(w, emu)

	rate := float64(steps) / max(elapsed.Seconds(), 1e-9)
	fmt.Fprintf(w, "%d steps, %ssteps/s\n", steps, unitconv.FormatPrefix(rate, unitconv.SI, 1))

	return
}

// runLines steps once for each line of input.
func runLines(emu *emulator.Emulator, r io.Reader, w io.Writer) (err error) {
	dump(w, emu)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		dump(w, emu)
		if done {
			fmt.Fprintf(w, "stopped at 0x%04x\n", emu.Ip())
		}
	}

	err = scanner.Err()
	return
}
