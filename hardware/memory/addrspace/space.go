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
package addrspace

import (
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Windows are 4KB in size.
const (
	PageShift  = 12
	PageSize   = 1 << PageShift
	NumWindows = 0x10000 >> PageShift
)

// The value of an unmapped address.
const OpenBus = 0xff

// Sentinel errors returned by MapRange() and MapPRG().
const (
	MisalignedRange = "addrspace: misaligned range (offset %#x, size %#x)"
	TooManyWindows  = "addrspace: too many windows (page %d, size %#x)"
	OutOfBacking    = "addrspace: range is outside of backing (offset %#x, size %#x)"
)

// Region identifies the different parts of the backing buffer.
type Region int

// List of valid Region values.
const (
	RegionRAM Region = iota
	RegionSRAM
	RegionPRG
	RegionOpenBus
)

func (r Region) String() string {
	switch r {
	case RegionRAM:
		return "RAM"
	case RegionSRAM:
		return "SRAM"
	case RegionPRG:
		return "PRG"
	case RegionOpenBus:
		return "open bus"
	}
	return "unknown region"
}

type region struct {
	offset int
	size   int
}

func (r region) contains(offset int, size int) bool {
	return offset >= r.offset && offset+size <= r.offset+r.size
}

// Space is the address space of the CPU.
type Space struct {
	backing []uint8

	// window bases may be negative. the base is added to the full address,
	// not to the offset within the window
	windows  [NumWindows]int
	writable [NumWindows]bool

	regions [RegionOpenBus + 1]region

	onRemap []func(first int, count int)
}

func pad(n int) int {
	return (n + PageSize - 1) &^ (PageSize - 1)
}

// NewSpace is the preferred method of initialisation for the Space type. The
// PRG data is copied into the backing buffer.
func NewSpace(prg []uint8, ramSize int, sramSize int) *Space {
	s := &Space{}

	o := 0
	for _, r := range []struct {
		id   Region
		size int
	}{
		{id: RegionRAM, size: ramSize},
		{id: RegionSRAM, size: sramSize},
		{id: RegionPRG, size: len(prg)},
		{id: RegionOpenBus, size: PageSize},
	} {
		s.regions[r.id] = region{offset: o, size: r.size}
		o += pad(r.size)
	}

	s.backing = make([]uint8, o)
	copy(s.backing[s.regions[RegionPRG].offset:], prg)

	ob := s.regions[RegionOpenBus]
	for i := ob.offset; i < ob.offset+ob.size; i++ {
		s.backing[i] = OpenBus
	}

	for p := range s.windows {
		s.setWindow(p, ob.offset)
	}

	// internal RAM is mirrored but reads and writes are normalised so both
	// windows can point to the same storage
	if ramSize > 0 {
		p := int(memorymap.OriginRAM >> PageShift)
		s.setWindow(p, s.regions[RegionRAM].offset)
		s.setWindow(p+1, s.regions[RegionRAM].offset)
	}

	if sramSize > 0 {
		_ = s.MapRange(int(memorymap.OriginSRAM>>PageShift), s.regions[RegionSRAM].offset, pad(sramSize))
	}

	return s
}

func (s *Space) String() string {
	return fmt.Sprintf("RAM %d SRAM %d PRG %d", s.regions[RegionRAM].size,
		s.regions[RegionSRAM].size, s.regions[RegionPRG].size)
}

// Size returns the size of a region in the backing buffer.
func (s *Space) Size(r Region) int {
	return s.regions[r].size
}

// Offset returns the offset of a region in the backing buffer.
func (s *Space) Offset(r Region) int {
	return s.regions[r].offset
}

// Backing returns the backing buffer. It should not be modified.
func (s *Space) Backing() []uint8 {
	return s.backing
}

func (s *Space) regionOf(offset int, size int) (Region, bool) {
	for id, r := range s.regions {
		if r.contains(offset, size) {
			return Region(id), true
		}
	}
	return RegionOpenBus, false
}

// setWindow points the page at the backing offset and returns true if the
// window has changed.
func (s *Space) setWindow(page int, offset int) bool {
	base := offset - page*PageSize
	if s.windows[page] == base {
		return false
	}
	s.windows[page] = base

	r, _ := s.regionOf(offset, 1)
	s.writable[page] = r == RegionRAM || r == RegionSRAM

	return true
}

// MapRange points the windows starting at page to the range in the backing
// buffer that begins at offset. The size must be a non-zero multiple of the
// page size and the range must fit entirely inside one region.
//
// Observers registered with OnRemap() are notified if any window changed.
func (s *Space) MapRange(page int, offset int, size int) error {
	if size <= 0 || size%PageSize != 0 || offset%PageSize != 0 {
		return curated.Errorf(MisalignedRange, offset, size)
	}

	n := size >> PageShift
	if page < 0 || page+n > NumWindows {
		return curated.Errorf(TooManyWindows, page, size)
	}

	if !s.inRegion(offset, size) {
		return curated.Errorf(OutOfBacking, offset, size)
	}

	first := -1
	last := -1
	for i := 0; i < n; i++ {
		if s.setWindow(page+i, offset+i*PageSize) {
			if first == -1 {
				first = page + i
			}
			last = page + i
		}
	}

	if first != -1 {
		for _, f := range s.onRemap {
			f(first, last-first+1)
		}
	}

	return nil
}

// inRegion returns true if the range fits inside a single region. the final
// page of a region may include padding.
func (s *Space) inRegion(offset int, size int) bool {
	if offset < 0 {
		return false
	}
	for _, r := range s.regions {
		if offset >= r.offset && offset+size <= r.offset+pad(r.size) {
			return true
		}
	}
	return false
}

// MapPRG maps a range of PRG data into the address space. The prgOffset is
// relative to the start of the PRG data.
func (s *Space) MapPRG(page int, prgOffset int, size int) error {
	r := s.regions[RegionPRG]
	if prgOffset < 0 || prgOffset+size > pad(r.size) {
		return curated.Errorf(OutOfBacking, prgOffset, size)
	}
	return s.MapRange(page, r.offset+prgOffset, size)
}

// MapSRAM maps the SRAM to the window range 0x6000 to 0x7fff. If enable is
// false the windows are pointed at the open bus page.
func (s *Space) MapSRAM(enable bool) error {
	page := int(memorymap.OriginSRAM >> PageShift)
	if enable && s.regions[RegionSRAM].size > 0 {
		return s.MapRange(page, s.regions[RegionSRAM].offset, pad(s.regions[RegionSRAM].size))
	}
	ob := s.regions[RegionOpenBus].offset
	if err := s.MapRange(page, ob, PageSize); err != nil {
		return err
	}
	return s.MapRange(page+1, ob, PageSize)
}

// OnRemap registers a function that is called whenever windows change. The
// first argument is the first changed page and the second argument is the
// number of pages from first that may have changed.
func (s *Space) OnRemap(f func(first int, count int)) {
	s.onRemap = append(s.onRemap, f)
}

// Window returns the backing offset of the first byte of the page.
func (s *Space) Window(page int) int {
	return s.windows[page] + page*PageSize
}

// Writable returns true if the page points to RAM or SRAM.
func (s *Space) Writable(page int) bool {
	return s.writable[page]
}

func normalise(addr uint16) uint16 {
	if addr <= memorymap.MemtopRAM {
		return addr & memorymap.MaskRAM
	}
	return addr
}

// Physical returns the offset in the backing buffer for the address.
func (s *Space) Physical(addr uint16) int {
	addr = normalise(addr)
	return s.windows[addr>>PageShift] + int(addr)
}

// Read the live byte at the address.
func (s *Space) Read(addr uint16) uint8 {
	addr = normalise(addr)
	return s.backing[s.windows[addr>>PageShift]+int(addr)]
}

// Peek is the same as Read(). Reading from the address space never has side
// effects. Memory mapped registers are handled elsewhere.
func (s *Space) Peek(addr uint16) uint8 {
	return s.Read(addr)
}

// Write the byte at the address. Returns false if the address is not
// writable.
func (s *Space) Write(addr uint16, data uint8) bool {
	addr = normalise(addr)
	p := addr >> PageShift
	if !s.writable[p] {
		return false
	}
	s.backing[s.windows[p]+int(addr)] = data
	return true
}

// ClearRAM zeroes internal RAM.
func (s *Space) ClearRAM() {
	r := s.regions[RegionRAM]
	clear(s.backing[r.offset : r.offset+r.size])
}

// PageMask returns the mask used to wrap a bank number for the number of
// banks. The mask is the smallest value of the form 2^n-1 that is not less
// than count-1.
func PageMask(count int) int {
	m := 0
	for m < count-1 {
		m = m<<1 | 1
	}
	return m
}
