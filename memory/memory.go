// Package memory implements the flat, byte-addressable memory of the vm16 CPU.
//
// All multi-byte values are big-endian. Every access is bounds checked: an
// address (or address+1, for words) outside the buffer fails without touching
// memory.
package memory

import (
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	MIN_SIZE = 2       // Smallest memory, one word.
	MAX_SIZE = 0x10000 // Largest memory reachable by a 16-bit address.

	VIEW_WIDTH = 8 // Bytes shown per View line.
)

// Memory is a fixed-length, zero-initialized byte buffer.
type Memory struct {
	data []byte
}

// New allocates a memory of size bytes.
func New(size int) (mem *Memory, err error) {
	if size < MIN_SIZE || size > MAX_SIZE {
		err = fmt.Errorf("%w: %d", ErrMemorySize, size)
		return
	}

	mem = &Memory{
		data: make([]byte, size),
	}

	return
}

// Len returns the size of the memory, in bytes.
func (mem *Memory) Len() int {
	return len(mem.data)
}

// check verifies that width bytes starting at addr are inside the buffer.
func (mem *Memory) check(addr uint16, width int) (err error) {
	if int(addr)+width > len(mem.data) {
		err = &ErrOutOfBounds{Addr: addr, Width: width, Len: len(mem.data)}
	}
	return
}

// Read8 reads the byte at addr.
func (mem *Memory) Read8(addr uint16) (value uint8, err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}

	value = mem.data[addr]
	return
}

// Write8 writes the byte at addr.
func (mem *Memory) Write8(addr uint16, value uint8) (err error) {
	err = mem.check(addr, 1)
	if err != nil {
		return
	}

	mem.data[addr] = value
	return
}

// Read16 reads the big-endian word at addr and addr+1.
func (mem *Memory) Read16(addr uint16) (value uint16, err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	value = binary.BigEndian.Uint16(mem.data[addr:])
	return
}

// Write16 writes the big-endian word at addr and addr+1.
func (mem *Memory) Write16(addr uint16, value uint16) (err error) {
	err = mem.check(addr, 2)
	if err != nil {
		return
	}

	binary.BigEndian.PutUint16(mem.data[addr:], value)
	return
}

// Load copies data into memory starting at addr.
func (mem *Memory) Load(addr uint16, data []byte) (err error) {
	if len(data) == 0 {
		return
	}

	err = mem.check(addr, len(data))
	if err != nil {
		return
	}

	copy(mem.data[addr:], data)
	return
}

// Slice returns a copy of n bytes starting at addr.
func (mem *Memory) Slice(addr uint16, n int) (data []byte, err error) {
	err = mem.check(addr, n)
	if err != nil {
		return
	}

	data = make([]byte, n)
	copy(data, mem.data[addr:])
	return
}

// Clear zeros the whole memory.
func (mem *Memory) Clear() {
	clear(mem.data)
}

// View renders VIEW_WIDTH bytes starting at addr as a single debug line.
// Bytes past the end of memory are shown as '--'.
func (mem *Memory) View(addr uint16) string {
	var text strings.Builder

	fmt.Fprintf(&text, "0x%04x:", addr)
	for n := range VIEW_WIDTH {
		at := int(addr) + n
		if at < len(mem.data) {
			fmt.Fprintf(&text, " 0x%02x", mem.data[at])
		} else {
			text.WriteString(" --")
		}
	}

	return text.String()
}
