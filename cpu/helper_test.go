package cpu

import (
	"testing"

	"github.com/ezrec/vm16/memory"
)

// newTestCpu builds a CPU over size bytes of memory, with code loaded at 0.
func newTestCpu(t *testing.T, size int, code ...byte) (cpu *Cpu, mem *memory.Memory) {
	t.Helper()

	mem, err := memory.New(size)
	if err != nil {
		t.Fatal(err)
	}

	err = mem.Load(0, code)
	if err != nil {
		t.Fatal(err)
	}

	cpu, err = NewCpu(mem)
	if err != nil {
		t.Fatal(err)
	}

	return
}
