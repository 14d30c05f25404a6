package memory

import (
	"errors"

	"github.com/ezrec/vm16/translate"
)

var f = translate.From

var (
	ErrMemorySize   = errors.New(f("memory size invalid"))
	ErrMemoryBounds = errors.New(f("memory access out of bounds"))
)

// ErrOutOfBounds describes a rejected access.
type ErrOutOfBounds struct {
	Addr  uint16 // First byte of the access.
	Width int    // Width of the access, in bytes.
	Len   int    // Length of the memory buffer.
}

func (err *ErrOutOfBounds) Error() string {
	return f("%d-byte access at 0x%04x outside [0, 0x%04x)", err.Width, err.Addr, err.Len)
}

func (err *ErrOutOfBounds) Is(target error) bool {
	return target == ErrMemoryBounds
}
