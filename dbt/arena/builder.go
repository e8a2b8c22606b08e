// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.
package arena

import (
	"encoding/binary"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinel error patterns.
const (
	BadPatch      = "arena: patch at offset %d (width %d) is outside the unit"
	BuilderClosed = "arena: builder has been committed or rolled back"
)

// Patch is a single modification to the bytes of a unit. The value is
// written little-endian.
type Patch struct {
	Offset int
	Width  int
	Value  uint32
}

// Builder assembles one unit of translated code.
type Builder struct {
	arena   *Arena
	start   int
	end     int
	patches []Patch
	closed  bool
}

// Len returns the number of bytes emitted so far.
func (b *Builder) Len() int {
	return b.end - b.start
}

// Emit copies bytes to the end of the unit. Returns the offset, relative to
// the start of the unit, of the first byte copied.
func (b *Builder) Emit(code []byte) (int, error) {
	if b.closed {
		return 0, curated.Errorf(BuilderClosed)
	}
	if b.end+len(code) > len(b.arena.mem) {
		return 0, curated.Errorf(Exhausted, len(b.arena.mem))
	}

	offset := b.Len()
	copy(b.arena.mem[b.end:], code)
	b.end += len(code)

	return offset, nil
}

// Patch records a patch to be applied when the unit is committed. The offset
// is relative to the start of the unit.
func (b *Builder) Patch(offset int, width int, value uint32) error {
	if b.closed {
		return curated.Errorf(BuilderClosed)
	}
	if offset < 0 || offset+width > b.Len() {
		return curated.Errorf(BadPatch, offset, width)
	}
	b.patches = append(b.patches, Patch{Offset: offset, Width: width, Value: value})
	return nil
}

// Patches returns the patches recorded so far.
func (b *Builder) Patches() []Patch {
	return b.patches
}

// Commit applies the recorded patches, pads the unit to the alignment
// boundary and adds the unit to the arena. Returns the offset of the unit
// in the arena and the size of the unit including padding.
func (b *Builder) Commit() (int, int, error) {
	if b.closed {
		return 0, 0, curated.Errorf(BuilderClosed)
	}

	for _, p := range b.patches {
		if err := b.apply(p); err != nil {
			b.Rollback()
			return 0, 0, err
		}
	}

	end := (b.end + Alignment - 1) &^ (Alignment - 1)
	if end > len(b.arena.mem) {
		b.Rollback()
		return 0, 0, curated.Errorf(Exhausted, len(b.arena.mem))
	}
	for i := b.end; i < end; i++ {
		b.arena.mem[i] = padding
	}
	b.end = end

	b.arena.used = b.end
	b.close()

	return b.start, b.end - b.start, nil
}

// Rollback discards the unit. Nothing emitted by the builder is added to the
// arena.
func (b *Builder) Rollback() {
	if b.closed {
		return
	}
	b.end = b.start
	b.patches = b.patches[:0]
	b.close()
}

func (b *Builder) close() {
	b.closed = true
	if b.arena.builder == b {
		b.arena.builder = nil
	}
}

// apply is the only place where the bytes of a unit are modified after they
// have been emitted.
func (b *Builder) apply(p Patch) error {
	if p.Offset < 0 || b.start+p.Offset+p.Width > b.end {
		return curated.Errorf(BadPatch, p.Offset, p.Width)
	}

	dst := b.arena.mem[b.start+p.Offset:]
	switch p.Width {
	case 1:
		dst[0] = uint8(p.Value)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(p.Value))
	case 3:
		dst[0] = uint8(p.Value)
		dst[1] = uint8(p.Value >> 8)
		dst[2] = uint8(p.Value >> 16)
	case 4:
		binary.LittleEndian.PutUint32(dst, p.Value)
	default:
		return curated.Errorf(BadPatch, p.Offset, p.Width)
	}

	return nil
}
