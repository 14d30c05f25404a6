package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	mem, err := New(256)
	assert.NoError(err)
	assert.Equal(256, mem.Len())

	for addr := range 256 {
		value, err := mem.Read8(uint16(addr))
		assert.NoError(err)
		assert.Equal(uint8(0), value)
	}
}

func TestNew_Size(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		size int
		ok   bool
	}){
		{0, false},
		{1, false},
		{2, true},
		{256, true},
		{0x10000, true},
		{0x10001, false},
		{-4, false},
	}

	for _, entry := range table {
		mem, err := New(entry.size)
		if entry.ok {
			assert.NoError(err, entry.size)
			assert.Equal(entry.size, mem.Len())
		} else {
			assert.ErrorIs(err, ErrMemorySize, entry.size)
			assert.Nil(mem)
		}
	}
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	mem, _ := New(16)

	assert.NoError(mem.Write16(4, 0x1234))

	hi, _ := mem.Read8(4)
	lo, _ := mem.Read8(5)
	assert.Equal(uint8(0x12), hi)
	assert.Equal(uint8(0x34), lo)

	value, err := mem.Read16(4)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)

	// Unaligned words are fine.
	value, err = mem.Read16(5)
	assert.NoError(err)
	assert.Equal(uint16(0x3400), value)
}

func TestMemory_Bounds(t *testing.T) {
	assert := assert.New(t)

	mem, _ := New(16)
	assert.NoError(mem.Write8(15, 0xaa))

	_, err := mem.Read8(16)
	assert.ErrorIs(err, ErrMemoryBounds)

	_, err = mem.Read16(15)
	assert.ErrorIs(err, ErrMemoryBounds)

	var oob *ErrOutOfBounds
	assert.True(errors.As(err, &oob))
	assert.Equal(uint16(15), oob.Addr)
	assert.Equal(2, oob.Width)
	assert.Equal(16, oob.Len)

	// A rejected word write must not touch the in-range byte.
	err = mem.Write16(15, 0x1234)
	assert.ErrorIs(err, ErrMemoryBounds)
	value, _ := mem.Read8(15)
	assert.Equal(uint8(0xaa), value)

	assert.ErrorIs(mem.Write8(0xffff, 1), ErrMemoryBounds)
	_, err = mem.Read16(0xffff)
	assert.ErrorIs(err, ErrMemoryBounds)
}

func TestMemory_FullRange(t *testing.T) {
	assert := assert.New(t)

	mem, _ := New(MAX_SIZE)

	assert.NoError(mem.Write16(0xfffe, 0xbeef))
	value, err := mem.Read16(0xfffe)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), value)

	_, err = mem.Read16(0xffff)
	assert.ErrorIs(err, ErrMemoryBounds)
}

func TestMemory_LoadSlice(t *testing.T) {
	assert := assert.New(t)

	mem, _ := New(8)

	assert.NoError(mem.Load(2, []byte{1, 2, 3}))
	data, err := mem.Slice(0, 8)
	assert.NoError(err)
	assert.Equal([]byte{0, 0, 1, 2, 3, 0, 0, 0}, data)

	// Slice is a copy.
	data[2] = 0xff
	value, _ := mem.Read8(2)
	assert.Equal(uint8(1), value)

	assert.ErrorIs(mem.Load(6, []byte{1, 2, 3}), ErrMemoryBounds)
	value, _ = mem.Read8(6)
	assert.Equal(uint8(0), value)

	_, err = mem.Slice(4, 5)
	assert.ErrorIs(err, ErrMemoryBounds)

	mem.Clear()
	data, _ = mem.Slice(0, 8)
	assert.Equal(make([]byte, 8), data)
}

func TestMemory_View(t *testing.T) {
	assert := assert.New(t)

	mem, _ := New(12)
	mem.Load(4, []byte{0x12, 0x34, 0xab, 0xcd})

	assert.Equal("0x0000: 0x00 0x00 0x00 0x00 0x12 0x34 0xab 0xcd", mem.View(0))
	assert.Equal("0x0006: 0xab 0xcd 0x00 0x00 0x00 0x00 -- --", mem.View(6))
}
