// Package wasmmem moves encoded text in and out of WebAssembly linear memory.
package wasmmem

import (
	"context"
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/errors"
)

// Wrap adapts a wazero memory to unitext.Memory.
func Wrap(mem api.Memory) unitext.Memory {
	if mem == nil {
		return nil
	}
	return &Linear{Mem: mem}
}

// WrapAllocator adapts a guest realloc export to unitext.Allocator.
func WrapAllocator(ctx context.Context, fn api.Function) unitext.Allocator {
	if fn == nil {
		return nil
	}
	return &Realloc{Ctx: ctx, Fn: fn}
}

// Linear is a wazero memory seen through unitext.Memory.
type Linear struct {
	Mem api.Memory
}

func outOfBounds(op string, offset, length uint32) error {
	return errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
		Path(op, strconv.FormatUint(uint64(offset), 10)).
		Value(offset).
		Detail("%d bytes at offset %d", length, offset).
		Build()
}

// Size returns the memory size in bytes.
func (m *Linear) Size() uint32 { return m.Mem.Size() }

// Read reads length bytes at offset.
func (m *Linear) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	return data, m.check(ok, "read", offset, length)
}

// Write writes data at offset.
func (m *Linear) Write(offset uint32, data []byte) error {
	return m.check(m.Mem.Write(offset, data), "write", offset, uint32(len(data)))
}

func (m *Linear) check(ok bool, op string, offset, length uint32) error {
	if ok {
		return nil
	}
	return outOfBounds(op, offset, length)
}

// ReadU16 reads a little-endian 16-bit unit.
func (m *Linear) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.Mem.ReadUint16Le(offset)
	return v, m.check(ok, "read", offset, 2)
}

// ReadU32 reads a little-endian 32-bit unit.
func (m *Linear) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	return v, m.check(ok, "read", offset, 4)
}

func (m *Linear) WriteU16(offset uint32, value uint16) error {
	return m.check(m.Mem.WriteUint16Le(offset, value), "write", offset, 2)
}

func (m *Linear) WriteU32(offset uint32, value uint32) error {
	return m.check(m.Mem.WriteUint32Le(offset, value), "write", offset, 4)
}

// Realloc allocates through a guest export with the
// realloc(old_ptr, old_size, align, new_size) signature.
type Realloc struct {
	Ctx context.Context
	Fn  api.Function
}

// Alloc allocates size bytes aligned to align.
func (a *Realloc) Alloc(size, align uint32) (uint32, error) {
	results, err := a.Fn.Call(a.Ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.New(errors.PhaseMemory, errors.KindAllocation).
			Cause(err).
			Detail("realloc(%d, %d)", size, align).
			Build()
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
	}
	return uint32(results[0]), nil
}

// Free releases an allocation.
func (a *Realloc) Free(ptr, size, align uint32) {
	_, _ = a.Fn.Call(a.Ctx, uint64(ptr), uint64(size), uint64(align), 0)
}
