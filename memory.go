package unitext

// Memory is a byte-addressed store, such as WebAssembly linear memory, that
// encoded text is lowered into and lifted from. 8-bit text moves through
// Read and Write. Wider units go one at a time and are little-endian.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
}

// MemorySizer is implemented by a Memory that knows its size in bytes.
// Lifting checks the whole range against it before reading.
type MemorySizer interface {
	Size() uint32
}

// Allocator reserves space in a Memory for lowered text.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}
