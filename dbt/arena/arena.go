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
	"github.com/jetsetilly/gophernes/curated"
)

// Alignment of every committed unit.
const Alignment = 16

// padding byte used to align units. this is the NOP instruction of the host
// instruction set
const padding = 0x00

// Sentinel error patterns.
const (
	Exhausted       = "arena: exhausted (capacity %d bytes)"
	InvalidCapacity = "arena: invalid capacity (%d)"
	AllocationError = "arena: cannot allocate region: %v"
)

// Arena is a fixed-capacity region of memory.
type Arena struct {
	mem  []byte
	used int

	// the open builder, if any
	builder *Builder
}

// New reserves a region of the given capacity.
func New(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}

	mem, err := allocate(capacity)
	if err != nil {
		return nil, curated.Errorf(AllocationError, err)
	}

	return &Arena{mem: mem}, nil
}

// Release the region. The Arena should not be used after Release().
func (a *Arena) Release() error {
	if a.mem == nil {
		return nil
	}
	err := release(a.mem)
	a.mem = nil
	a.used = 0
	return err
}

// Capacity of the region.
func (a *Arena) Capacity() int {
	return len(a.mem)
}

// Used returns the number of bytes committed.
func (a *Arena) Used() int {
	return a.used
}

// Bytes returns the committed portion of the region. The slice is only
// valid until the next commit.
func (a *Arena) Bytes() []byte {
	return a.mem[:a.used]
}

// Reserve claims the next n bytes of the region directly, without a
// Builder. The bytes are zeroed.
func (a *Arena) Reserve(n int) ([]byte, error) {
	if a.used+n > len(a.mem) {
		return nil, curated.Errorf(Exhausted, len(a.mem))
	}
	r := a.mem[a.used : a.used+n : a.used+n]
	clear(r)
	a.used += n
	return r, nil
}

// Begin a new unit. Any open builder is rolled back.
func (a *Arena) Begin() *Builder {
	if a.builder != nil {
		a.builder.Rollback()
	}
	a.builder = &Builder{
		arena: a,
		start: a.used,
		end:   a.used,
	}
	return a.builder
}
