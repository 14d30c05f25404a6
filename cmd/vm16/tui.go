package main

import (
	"errors"
	"fmt"

	"github.com/jroimartin/gocui"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/emulator"
	"github.com/ezrec/vm16/memory"
)

const (
	TUI_RUN_LIMIT   = 0x10000 // Steps per 'r' when no --steps limit is given.
	TUI_MEMORY_ROWS = 8       // Memory rows shown after ip and sp.
)

// debugger is the terminal front end of an emulator.
type debugger struct {
	emu    *emulator.Emulator
	limit  int
	status string
}

func runTui(emu *emulator.Emulator, limit int) (err error) {
	if limit <= 0 {
		limit = TUI_RUN_LIMIT
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return
	}
	defer g.Close()

	dbg := &debugger{
		emu:    emu,
		limit:  limit,
		status: fmt.Sprintf("loaded %v: Enter/s step, r run, q quit", emu.Program.Name),
	}

	g.SetManagerFunc(dbg.layout)

	bindings := [](struct {
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}){
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{gocui.KeyEnter, dbg.step},
		{'s', dbg.step},
		{'r', dbg.run},
	}
	for _, binding := range bindings {
		err = g.SetKeybinding("", binding.key, gocui.ModNone, binding.handler)
		if err != nil {
			return
		}
	}

	err = g.MainLoop()
	if errors.Is(err, gocui.ErrQuit) {
		err = nil
	}

	return
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// step executes one instruction.
func (dbg *debugger) step(g *gocui.Gui, v *gocui.View) error {
	done, err := dbg.emu.Tick()
	switch {
	case err != nil:
		dbg.status = err.Error()
	case done:
		dbg.status = fmt.Sprintf("stopped at 0x%04x", dbg.emu.Ip())
	default:
		dbg.status = fmt.Sprintf("step %d", dbg.emu.Ticks())
	}
	return nil
}

// run executes until a breakpoint, the stop expression, or the step limit.
func (dbg *debugger) run(g *gocui.Gui, v *gocui.View) error {
	steps, err := dbg.emu.Run(dbg.limit)
	if err != nil {
		dbg.status = err.Error()
	} else {
		dbg.status = fmt.Sprintf("ran %d steps, stopped at 0x%04x", steps, dbg.emu.Ip())
	}
	return nil
}

// memoryRows writes rows of memory starting at addr.
func (dbg *debugger) memoryRows(v *gocui.View, title string, addr uint16) {
	fmt.Fprintf(v, "%v\n", title)
	row := addr &^ (memory.VIEW_WIDTH - 1)
	for range TUI_MEMORY_ROWS {
		if int(row) >= dbg.emu.Memory.Len() {
			break
		}
		fmt.Fprintln(v, dbg.emu.ViewMemoryAt(row))
		row += memory.VIEW_WIDTH
		if row == 0 {
			break
		}
	}
}

func (dbg *debugger) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	emu := dbg.emu

	v, err := g.SetView("registers", 0, 0, 24, cpu.REGISTER_COUNT+4)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	v.Clear()
	fmt.Fprint(v, emu.Cpu.String())
	fmt.Fprintf(v, "frame: %d\n", emu.FrameSize())
	fmt.Fprintf(v, "ticks: %d\n", emu.Ticks())

	v, err = g.SetView("memory", 25, 0, maxX-1, maxY-5)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Memory"
	}
	v.Clear()
	ip := emu.Ip()
	if label, ok := emu.Label(ip); ok {
		fmt.Fprintf(v, "%v:\n", label)
	}
	fmt.Fprintf(v, "0x%04x: %v\n\n", ip, emu.Instruction(ip))
	dbg.memoryRows(v, "ip", ip)
	fmt.Fprintln(v)
	dbg.memoryRows(v, "sp", emu.Registers.Index(cpu.REG_SP))

	v, err = g.SetView("status", 0, maxY-4, maxX-1, maxY-1)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	v.Clear()
	fmt.Fprintln(v, dbg.status)

	return nil
}
