package emulator

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Until sets a stop expression, evaluated after every tick. The expression
// is Starlark, and sees every register and define by name:
//
//	acc == 3 and ip > 0x20
//
// An empty expression clears it.
func (emu *Emulator) Until(expr string) (err error) {
	if len(expr) == 0 {
		emu.until = ""
		return
	}

	// Check it against the current state.
	_, err = emu.evalUntil(expr)
	if err != nil {
		return
	}

	emu.until = expr
	return
}

// evalUntil evaluates the stop expression.
func (emu *Emulator) evalUntil(expr string) (stop bool, err error) {
	thread := starlark.Thread{Name: "until"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, value := range emu.Defines() {
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=(" + expr + ")\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "until", prog, pred)
	if err != nil {
		err = errors.Join(ErrUntilExpression, err)
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrUntilExpression
		return
	}

	stop = bool(rc.Truth())
	return
}
