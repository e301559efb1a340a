package wasmmem

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
)

// guestWASM exports one page of memory as "memory" and re-exports the
// imported alloc.cabi_realloc, so the allocator is reached through a guest
// module the way a real component exposes it.
var guestWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x01, 0x09, 0x01, 0x60, 0x04, 0x7f, 0x7f, 0x7f, 0x7f, 0x01, 0x7f, // type: (i32 i32 i32 i32) -> i32
	0x02, 0x16, 0x01, // import section: 1 import
	0x05, 0x61, 0x6c, 0x6c, 0x6f, 0x63, // module: "alloc"
	0x0c, 0x63, 0x61, 0x62, 0x69, 0x5f, 0x72, 0x65, 0x61, 0x6c, 0x6c, 0x6f, 0x63, // name: "cabi_realloc"
	0x00, 0x00, // kind: func, type 0
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x19, 0x02, // export section: 2 exports
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, // "memory", memory 0
	0x0c, 0x63, 0x61, 0x62, 0x69, 0x5f, 0x72, 0x65, 0x61, 0x6c, 0x6c, 0x6f, 0x63, 0x00, 0x00, // "cabi_realloc", func 0
}

type guest struct {
	mem   unitext.Memory
	alloc unitext.Allocator
	freed int
	calls int
}

// newGuest instantiates a bump allocator from offset 16 as the host module
// "alloc" and the guest module that re-exports it.
func newGuest(t *testing.T) *guest {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	g := &guest{}
	next := uint32(16)
	_, err := rt.NewHostModuleBuilder("alloc").
		NewFunctionBuilder().
		WithFunc(func(_ context.Context, oldPtr, oldSize, align, newSize uint32) uint32 {
			g.calls++
			if newSize == 0 {
				g.freed++
				return 0
			}
			next = (next + align - 1) &^ (align - 1)
			ptr := next
			next += newSize
			return ptr
		}).
		Export("cabi_realloc").
		Instantiate(ctx)
	if err != nil {
		t.Fatalf("failed to instantiate allocator: %v", err)
	}

	mod, err := rt.Instantiate(ctx, guestWASM)
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	g.mem = Wrap(mod.ExportedMemory("memory"))
	g.alloc = WrapAllocator(ctx, mod.ExportedFunction("cabi_realloc"))
	if g.alloc == nil {
		t.Fatal("cabi_realloc not exported")
	}
	return g
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("expected nil for nil memory")
	}
	if WrapAllocator(context.Background(), nil) != nil {
		t.Error("expected nil for nil function")
	}
}

func TestLinear_ReadWrite(t *testing.T) {
	g := newGuest(t)

	if err := g.mem.WriteU16(2, 0xD83D); err != nil {
		t.Fatalf("WriteU16 failed: %v", err)
	}
	if v, err := g.mem.ReadU16(2); err != nil || v != 0xD83D {
		t.Errorf("ReadU16 = %x, %v", v, err)
	}
	if err := g.mem.WriteU32(8, 0x1F600); err != nil {
		t.Fatalf("WriteU32 failed: %v", err)
	}
	if v, err := g.mem.ReadU32(8); err != nil || v != 0x1F600 {
		t.Errorf("ReadU32 = %x, %v", v, err)
	}
	if err := g.mem.Write(0, []byte{'a', 'b'}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if v, err := g.mem.Read(0, 2); err != nil || string(v) != "ab" {
		t.Errorf("Read = %q, %v", v, err)
	}

	sizer, ok := g.mem.(unitext.MemorySizer)
	if !ok || sizer.Size() != 65536 {
		t.Errorf("expected one page of memory")
	}
}

func TestLinear_OutOfBounds(t *testing.T) {
	g := newGuest(t)

	tests := []struct {
		name string
		op   func() error
	}{
		{"read", func() error { _, err := g.mem.Read(65530, 10); return err }},
		{"write", func() error { return g.mem.Write(65535, []byte{1, 2}) }},
		{"read u16", func() error { _, err := g.mem.ReadU16(65535); return err }},
		{"read u32", func() error { _, err := g.mem.ReadU32(65533); return err }},
		{"write u16", func() error { return g.mem.WriteU16(65535, 1) }},
		{"write u32", func() error { return g.mem.WriteU32(65533, 1) }},
	}

	target := &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindOutOfBounds}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, target) {
				t.Errorf("error %v is not out_of_bounds", err)
			}
		})
	}
}

func TestLowerLift_UTF16(t *testing.T) {
	g := newGuest(t)
	enc := codec.UTF16{}
	text := span.FromString[uint16](enc, "héllo 😀")

	ptr, units, err := Lower(enc, g.mem, g.alloc, text)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if ptr%2 != 0 {
		t.Errorf("ptr %d not aligned to unit size", ptr)
	}
	if units != 9 {
		t.Errorf("units = %d, want 9", units)
	}
	if v, _ := g.mem.ReadU16(ptr + 14); v != 0xDE00 {
		t.Errorf("low surrogate stored as %x", v)
	}

	got, err := Lift[uint16](enc, g.mem, ptr, units)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if s := span.String(enc, got); s != "héllo 😀" {
		t.Errorf("Lift = %q", s)
	}
	if got[len(got)-1] != 0 {
		t.Error("lifted buffer is not terminated")
	}
}

func TestLowerLift_UTF32(t *testing.T) {
	g := newGuest(t)
	enc := codec.UTF32{}
	text := span.FromString[uint32](enc, "€😀")

	ptr, units, err := Lower(enc, g.mem, g.alloc, text)
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if ptr%4 != 0 {
		t.Errorf("ptr %d not aligned to unit size", ptr)
	}
	// Lift without the terminator works too.
	got, err := Lift[uint32](enc, g.mem, ptr, units-1)
	if err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if s := span.String(enc, got); s != "€😀" {
		t.Errorf("Lift = %q", s)
	}
}

func TestString_RoundTrip(t *testing.T) {
	g := newGuest(t)

	ptr, units, err := LowerString(g.mem, g.alloc, "wörld")
	if err != nil {
		t.Fatalf("LowerString failed: %v", err)
	}
	if units != 7 {
		t.Errorf("units = %d, want 7", units)
	}
	s, err := LiftString(g.mem, ptr, units)
	if err != nil || s != "wörld" {
		t.Errorf("LiftString = %q, %v", s, err)
	}
}

func TestLift_Malformed(t *testing.T) {
	g := newGuest(t)
	// lone high surrogate followed by 'A'
	if err := g.mem.WriteU16(100, 0xD83D); err != nil {
		t.Fatal(err)
	}
	if err := g.mem.WriteU16(102, 'A'); err != nil {
		t.Fatal(err)
	}

	_, err := Lift[uint16](codec.UTF16{}, g.mem, 100, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindInvalidData}) {
		t.Errorf("expected invalid data, got %v", err)
	}

	_, err = LiftString(g.mem, 100, 2)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindInvalidData}) {
		t.Errorf("expected invalid UTF-8, got %v", err)
	}
}

func TestLift_OutOfBounds(t *testing.T) {
	g := newGuest(t)
	_, err := Lift[uint32](codec.UTF32{}, g.mem, 65532, 4)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindOutOfBounds}) {
		t.Errorf("expected out of bounds, got %v", err)
	}
}

func TestLower_Malformed(t *testing.T) {
	g := newGuest(t)
	_, _, err := Lower[uint8](codec.UTF8{}, g.mem, g.alloc, []uint8{'a', 0xC0, 0xAF, 0})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindInvalidData}) {
		t.Errorf("expected invalid data, got %v", err)
	}
}

type failingAlloc struct{}

func (failingAlloc) Alloc(size, align uint32) (uint32, error) {
	return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
}

func (failingAlloc) Free(ptr, size, align uint32) {}

func TestLower_AllocationFails(t *testing.T) {
	g := newGuest(t)
	_, _, err := LowerString(g.mem, failingAlloc{}, "x")
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseMemory, Kind: errors.KindAllocation}) {
		t.Errorf("expected allocation error, got %v", err)
	}
}

type badPtrAlloc struct{ freed bool }

func (a *badPtrAlloc) Alloc(size, align uint32) (uint32, error) { return 70000, nil }

func (a *badPtrAlloc) Free(ptr, size, align uint32) { a.freed = true }

func TestLower_WriteFailsFrees(t *testing.T) {
	g := newGuest(t)
	alloc := &badPtrAlloc{}
	_, _, err := LowerString(g.mem, alloc, "abc")
	if err == nil {
		t.Fatal("expected write error")
	}
	if !alloc.freed {
		t.Error("allocation was not released")
	}
}

func TestRealloc_Alloc(t *testing.T) {
	g := newGuest(t)

	first, err := g.alloc.Alloc(3, 1)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if first != 16 {
		t.Errorf("first = %d, want 16", first)
	}
	second, err := g.alloc.Alloc(8, 4)
	if err != nil {
		t.Fatalf("Alloc failed: %v", err)
	}
	if second != 20 {
		t.Errorf("second = %d, want 20", second)
	}
	if g.calls != 2 {
		t.Errorf("calls = %d, want 2", g.calls)
	}
}

func TestRealloc_Free(t *testing.T) {
	g := newGuest(t)
	g.alloc.Free(16, 4, 1)
	if g.freed != 1 {
		t.Errorf("freed = %d, want 1", g.freed)
	}
}

func TestLower_UsesGuestAllocator(t *testing.T) {
	g := newGuest(t)

	ptr, _, err := LowerString(g.mem, g.alloc, "a")
	if err != nil {
		t.Fatalf("LowerString failed: %v", err)
	}
	if ptr != 16 || g.calls != 1 {
		t.Errorf("ptr = %d, calls = %d", ptr, g.calls)
	}
	ptr, _, err = Lower(codec.UTF16{}, g.mem, g.alloc, span.FromString[uint16](codec.UTF16{}, "b"))
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	// 16 + 2 bytes, aligned up to 2
	if ptr != 18 {
		t.Errorf("ptr = %d, want 18", ptr)
	}
}

type countingMemory struct {
	unitext.Memory
	wide int
}

func (m *countingMemory) WriteU16(offset uint32, value uint16) error {
	m.wide++
	return m.Memory.WriteU16(offset, value)
}

func (m *countingMemory) ReadU16(offset uint32) (uint16, error) {
	m.wide++
	return m.Memory.ReadU16(offset)
}

func TestLowerLift_WideUnitsPerAccess(t *testing.T) {
	g := newGuest(t)
	mem := &countingMemory{Memory: g.mem}
	enc := codec.UTF16{}

	ptr, units, err := Lower(enc, mem, g.alloc, span.FromString[uint16](enc, "hi"))
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	if mem.wide != int(units) {
		t.Errorf("writes = %d, want %d", mem.wide, units)
	}
	mem.wide = 0
	if _, err := Lift[uint16](enc, mem, ptr, units); err != nil {
		t.Fatalf("Lift failed: %v", err)
	}
	if mem.wide != int(units) {
		t.Errorf("reads = %d, want %d", mem.wide, units)
	}
}
