package program

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/vm16/cpu"
	"github.com/ezrec/vm16/memory"
)

func TestProgram_Encode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		prog  *Program
		bytes []byte
	}){
		{"mov_lit_reg", New("", 0).MovLitReg(0x1234, cpu.REG_R1), []byte{0x10, 0x12, 0x34, 0x02}},
		{"mov_reg_reg", New("", 0).MovRegReg(cpu.REG_R1, cpu.REG_ACC), []byte{0x11, 0x02, 0x01}},
		{"mov_reg_mem", New("", 0).MovRegMem(cpu.REG_ACC, 0x0100), []byte{0x12, 0x01, 0x01, 0x00}},
		{"mov_mem_reg", New("", 0).MovMemReg(0x0100, cpu.REG_R8), []byte{0x13, 0x01, 0x00, 0x09}},
		{"add_reg_reg", New("", 0).AddRegReg(cpu.REG_R1, cpu.REG_R2), []byte{0x14, 0x02, 0x03}},
		{"jmp_not_eq", New("", 0).JmpNotEq(0x0003, 0x0004), []byte{0x15, 0x00, 0x03, 0x00, 0x04}},
		{"psh_lit", New("", 0).PshLit(0xbeef), []byte{0x17, 0xbe, 0xef}},
		{"psh_reg", New("", 0).PshReg(cpu.REG_SP), []byte{0x18, 0x0a}},
		{"pop", New("", 0).Pop(cpu.REG_FP), []byte{0x1a, 0x0b}},
		{"cal_lit", New("", 0).CalLit(0x0040), []byte{0x5e, 0x00, 0x40}},
		{"cal_reg", New("", 0).CalReg(cpu.REG_R5), []byte{0x5f, 0x06}},
		{"ret", New("", 0).Ret(), []byte{0x60}},
		{"raw", New("", 0).Raw(cpu.MOV_REG_REG, 14, 25), []byte{0x11, 14, 25}},
		{"word", New("", 0).Word(0xabcd), []byte{0xab, 0xcd}},
	}

	for _, entry := range table {
		assert.Equal(entry.bytes, entry.prog.Binary(), entry.name)
		op := entry.prog.Ops[0]
		if !op.Data {
			assert.Equal(op.Opcode.OperandSize()+1, len(op.Codes), entry.name)
		}
	}
}

func TestProgram_Here(t *testing.T) {
	assert := assert.New(t)

	prog := New("here", 0x20)
	assert.Equal(uint16(0x20), prog.Here())

	prog.MovLitReg(1, cpu.REG_R1).Label("next")
	assert.Equal(uint16(0x24), prog.Here())
	assert.Equal(uint16(0x24), prog.Labels["next"])

	prog.Org(0x30)
	assert.Equal(uint16(0x30), prog.Here())

	// Org never moves backwards.
	prog.Org(0x10)
	assert.Equal(uint16(0x30), prog.Here())

	prog.Ret()
	assert.Equal(0x11, len(prog.Binary()))
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := Add()

	op, ok := prog.Debug(0)
	assert.True(ok)
	assert.Equal(cpu.MOV_LIT_REG, op.Opcode)

	op, ok = prog.Debug(6)
	assert.True(ok)
	assert.Equal(cpu.MOV_LIT_REG, op.Opcode)
	assert.Equal(uint16(4), op.Ip)

	op, ok = prog.Debug(8)
	assert.True(ok)
	assert.Equal(cpu.ADD_REG_REG, op.Opcode)

	_, ok = prog.Debug(prog.Here())
	assert.False(ok)
}

func TestProgram_Load(t *testing.T) {
	assert := assert.New(t)

	mem, _ := memory.New(64)
	prog := New("load", 0x10).PshLit(0x1234)
	assert.NoError(prog.Load(mem))

	data, _ := mem.Slice(0x10, 3)
	assert.Equal([]byte{0x17, 0x12, 0x34}, data)

	prog = New("big", 62).PshLit(0x1234)
	assert.ErrorIs(prog.Load(mem), memory.ErrMemoryBounds)
}

func TestDemos(t *testing.T) {
	assert := assert.New(t)

	names := slices.Collect(Demos())
	assert.Equal([]string{"add", "args", "call", "loop"}, names)

	for _, name := range names {
		prog, ok := Demo(name)
		assert.True(ok, name)
		assert.Equal(name, prog.Name)
		assert.NotEmpty(prog.Binary(), name)
		_, ok = prog.Labels["end"]
		assert.True(ok, name)
	}

	_, ok := Demo("missing")
	assert.False(ok)

	call := Call()
	assert.Equal(uint16(SUBROUTINE_ADDR), call.Labels["subroutine"])
	assert.Equal(uint16(14), call.Labels["return"])
}
