package wasmmem

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/unitext"
	"github.com/wippyai/unitext/codec"
	"github.com/wippyai/unitext/errors"
	"github.com/wippyai/unitext/span"
	"github.com/wippyai/unitext/strs"
)

// Lower copies the terminated string in text into freshly allocated guest
// memory. units counts the terminator. The allocation is aligned to the unit
// size and units are stored little-endian.
func Lower[U codec.Unit](enc codec.Encoding[U], mem unitext.Memory, alloc unitext.Allocator, text []U) (ptr, units uint32, err error) {
	if err := validate(enc, text); err != nil {
		return 0, 0, err
	}

	n := strs.CopySize(text)
	size := codec.UnitSize[U]()
	if uint64(n)*uint64(size) > math.MaxUint32 {
		return 0, 0, errors.Overflow(errors.PhaseMemory, []string{"lower"}, uint64(n)*uint64(size), "u32")
	}
	bytes := uint32(n * size)

	ptr, err = alloc.Alloc(bytes, uint32(size))
	if err != nil {
		return 0, 0, err
	}
	Logger().Debug("lowered text",
		zap.String("encoding", enc.Name()),
		zap.Uint32("ptr", ptr),
		zap.Int("units", n))

	buf := make([]U, n)
	strs.Copy(enc, buf, text)
	if err := store(mem, ptr, buf); err != nil {
		alloc.Free(ptr, bytes, uint32(size))
		return 0, 0, err
	}
	return ptr, uint32(n), nil
}

// Lift reads units units at ptr and returns them as a terminated buffer.
// Every codepoint before the first zero unit must decode.
func Lift[U codec.Unit](enc codec.Encoding[U], mem unitext.Memory, ptr, units uint32) ([]U, error) {
	size := uint64(codec.UnitSize[U]())
	if uint64(units)*size > math.MaxUint32 {
		return nil, errors.Overflow(errors.PhaseMemory, []string{"lift"}, uint64(units)*size, "u32")
	}

	bytes := uint32(uint64(units) * size)
	if sizer, ok := mem.(unitext.MemorySizer); ok && uint64(ptr)+uint64(bytes) > uint64(sizer.Size()) {
		return nil, outOfBounds("read", ptr, bytes)
	}

	buf := make([]U, units+1)
	if err := load(mem, ptr, buf[:units]); err != nil {
		return nil, err
	}
	if err := validate(enc, buf); err != nil {
		Logger().Debug("malformed guest text",
			zap.String("encoding", enc.Name()),
			zap.Uint32("ptr", ptr),
			zap.Error(err))
		return nil, err
	}
	return buf, nil
}

// LowerString lowers s as UTF-8.
func LowerString(mem unitext.Memory, alloc unitext.Allocator, s string) (ptr, units uint32, err error) {
	return Lower(codec.UTF8{}, mem, alloc, span.FromString[uint8](codec.UTF8{}, s))
}

// LiftString lifts UTF-8 text into a Go string.
func LiftString(mem unitext.Memory, ptr, units uint32) (string, error) {
	buf, err := Lift[uint8](codec.UTF8{}, mem, ptr, units)
	if err != nil {
		return "", err
	}
	return span.String[uint8](codec.UTF8{}, buf), nil
}

func validate[U codec.Unit](enc codec.Encoding[U], buf []U) error {
	c := span.Start(buf)
	for {
		r, next := c.Next(enc)
		if r == 0 {
			break
		}
		c = next
	}
	if !c.AtEnd() {
		return errors.InvalidSequence(errors.PhaseMemory, enc.Name(), c.Pos(), c.Rest()[:1])
	}
	return nil
}

// store writes buf at ptr. Bytes go in one write, wider units one at a time.
func store[U codec.Unit](mem unitext.Memory, ptr uint32, buf []U) error {
	size := uint32(codec.UnitSize[U]())
	if size == 1 {
		data := make([]byte, len(buf))
		for i, u := range buf {
			data[i] = byte(u)
		}
		return mem.Write(ptr, data)
	}
	for i, u := range buf {
		off := ptr + uint32(i)*size
		var err error
		if size == 2 {
			err = mem.WriteU16(off, uint16(u))
		} else {
			err = mem.WriteU32(off, uint32(u))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func load[U codec.Unit](mem unitext.Memory, ptr uint32, dst []U) error {
	size := uint32(codec.UnitSize[U]())
	if size == 1 {
		data, err := mem.Read(ptr, uint32(len(dst)))
		if err != nil {
			return err
		}
		for i, b := range data {
			dst[i] = U(b)
		}
		return nil
	}
	for i := range dst {
		off := ptr + uint32(i)*size
		switch size {
		case 2:
			v, err := mem.ReadU16(off)
			if err != nil {
				return err
			}
			dst[i] = U(v)
		default:
			v, err := mem.ReadU32(off)
			if err != nil {
				return err
			}
			dst[i] = U(v)
		}
	}
	return nil
}
