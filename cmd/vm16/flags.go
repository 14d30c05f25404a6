package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/ezrec/vm16/memory"
)

type memoryFlagType struct {
	cli.StringFlag
}

var MemoryFlag = &memoryFlagType{
	cli.StringFlag{
		Name:    "memory",
		Aliases: []string{"m"},
		Usage:   "memory size in bytes, with an optional IEC prefix (64Ki)",
		Value:   "256",
		EnvVars: []string{"VM16_MEMORY"},
	},
}

func (f *memoryFlagType) Fetch(context *cli.Context) (int, error) {
	return parseSize(context.String(f.Name))
}

type originFlagType struct {
	cli.StringFlag
}

var OriginFlag = &originFlagType{
	cli.StringFlag{
		Name:  "origin",
		Usage: "load address of a --binary image",
		Value: "0",
	},
}

func (f *originFlagType) Fetch(context *cli.Context) (uint16, error) {
	return parseAddress(context.String(f.Name))
}

type breakFlagType struct {
	cli.StringSliceFlag
}

var BreakFlag = &breakFlagType{
	cli.StringSliceFlag{
		Name:  "break",
		Usage: "stop when ip reaches this address (repeatable)",
	},
}

func (f *breakFlagType) Fetch(context *cli.Context) (addrs []uint16, err error) {
	for _, text := range context.StringSlice(f.Name) {
		var addr uint16
		addr, err = parseAddress(text)
		if err != nil {
			return
		}
		addrs = append(addrs, addr)
	}
	return
}

var ProgramFlag = &cli.StringFlag{
	Name:    "program",
	Aliases: []string{"p"},
	Usage:   "demo program to run (see --list)",
	Value:   "add",
}

var BinaryFlag = &cli.StringFlag{
	Name:      "binary",
	Aliases:   []string{"b"},
	Usage:     "raw memory image to run instead of a demo",
	TakesFile: true,
}

var StepsFlag = &cli.IntFlag{
	Name:    "steps",
	Aliases: []string{"n"},
	Usage:   "stop after this many steps, 0 for no limit",
}

var UntilFlag = &cli.StringFlag{
	Name:    "until",
	Aliases: []string{"u"},
	Usage:   "stop when this expression holds, such as 'acc == 3'",
}

var StrictFlag = &cli.BoolFlag{
	Name:  "strict",
	Usage: "fault on unknown opcodes",
}

var VerboseFlag = &cli.BoolFlag{
	Name:    "verbose",
	Aliases: []string{"v"},
	Usage:   "log every executed instruction",
}

var LogFlag = &cli.StringFlag{
	Name:      "log",
	Usage:     "append log output to this file",
	TakesFile: true,
	EnvVars:   []string{"VM16_LOG"},
}

var StepFlag = &cli.BoolFlag{
	Name:    "step",
	Aliases: []string{"s"},
	Usage:   "step once for every line read from stdin",
}

var TuiFlag = &cli.BoolFlag{
	Name:  "tui",
	Usage: "run the terminal debugger",
}

var ListFlag = &cli.BoolFlag{
	Name:  "list",
	Usage: "list demo programs and exit",
}

// parseSize parses a memory size, such as 256 or 64Ki.
func parseSize(text string) (size int, err error) {
	value, err := unitconv.ParsePrefix(text, unitconv.IEC)
	if err != nil {
		err = fmt.Errorf("%w: %v", memory.ErrMemorySize, err)
		return
	}

	if value != math.Trunc(value) || value < memory.MIN_SIZE || value > memory.MAX_SIZE {
		err = fmt.Errorf("%w: %v", memory.ErrMemorySize, text)
		return
	}

	size = int(value)
	return
}

// parseAddress parses a 16-bit address, in any Go integer literal base.
func parseAddress(text string) (addr uint16, err error) {
	value, err := strconv.ParseUint(text, 0, 16)
	if err != nil {
		return
	}

	addr = uint16(value)
	return
}
