package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCpu_MemoryAccess(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	mem := NewMockMemory(ctrl)
	mem.EXPECT().Len().Return(0x1000)

	cpu, err := NewCpu(mem)
	assert.NoError(err)
	cpu.Registers.SetIndex(REG_IP, 0x0200)
	cpu.Registers.SetIndex(REG_R3, 0xcafe)

	// MOV_REG_MEM r3, [0x0400]
	gomock.InOrder(
		mem.EXPECT().Read8(uint16(0x0200)).Return(uint8(MOV_REG_MEM), nil),
		mem.EXPECT().Read8(uint16(0x0201)).Return(uint8(REG_R3), nil),
		mem.EXPECT().Read16(uint16(0x0202)).Return(uint16(0x0400), nil),
		mem.EXPECT().Write16(uint16(0x0400), uint16(0xcafe)).Return(nil),
	)

	assert.NoError(cpu.Step())
	assert.Equal(uint16(0x0204), cpu.Registers.Index(REG_IP))
}

func TestCpu_MemoryPush(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	mem := NewMockMemory(ctrl)
	mem.EXPECT().Len().Return(0x100)

	cpu, err := NewCpu(mem)
	assert.NoError(err)

	// PSH_LIT 0x1234 writes at the top of the stack.
	gomock.InOrder(
		mem.EXPECT().Read8(uint16(0)).Return(uint8(PSH_LIT), nil),
		mem.EXPECT().Read16(uint16(1)).Return(uint16(0x1234), nil),
		mem.EXPECT().Write16(uint16(0xfe), uint16(0x1234)).Return(nil),
	)

	assert.NoError(cpu.Step())
	assert.Equal(uint16(0xfc), cpu.Registers.Index(REG_SP))
}

func TestCpu_MemoryError(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)

	bus := errors.New("bus error")

	mem := NewMockMemory(ctrl)
	mem.EXPECT().Len().Return(0x100)

	cpu, err := NewCpu(mem)
	assert.NoError(err)

	// A failed stack write leaves sp alone.
	gomock.InOrder(
		mem.EXPECT().Read8(uint16(0)).Return(uint8(PSH_REG), nil),
		mem.EXPECT().Read8(uint16(1)).Return(uint8(REG_ACC), nil),
		mem.EXPECT().Write16(uint16(0xfe), uint16(0)).Return(bus),
	)

	err = cpu.Step()
	assert.ErrorIs(err, bus)
	assert.Equal(uint16(0xfe), cpu.Registers.Index(REG_SP))
	assert.Equal(0, cpu.FrameSize())
}
