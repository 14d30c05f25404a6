// Command vm16 runs programs on the vm16 virtual CPU.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "vm16",
		Usage: "16-bit virtual CPU emulator",
		Flags: []cli.Flag{
			MemoryFlag,
			ProgramFlag,
			BinaryFlag,
			OriginFlag,
			StepsFlag,
			UntilFlag,
			BreakFlag,
			StrictFlag,
			VerboseFlag,
			LogFlag,
			StepFlag,
			TuiFlag,
			ListFlag,
		},
		Action: doRun,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
