package cpu

//go:generate go tool mockgen -source memory.go -destination memory_mock.go -package cpu

// Memory is the byte-addressable store the CPU executes from.
// Words are big-endian. Accesses outside [0, Len()) must fail.
type Memory interface {
	// Len returns the size of the memory, in bytes.
	Len() int
	// Read8 reads the byte at addr.
	Read8(addr uint16) (uint8, error)
	// Write8 writes the byte at addr.
	Write8(addr uint16, value uint8) error
	// Read16 reads the word at addr.
	Read16(addr uint16) (uint16, error)
	// Write16 writes the word at addr.
	Write16(addr uint16, value uint16) error
}
