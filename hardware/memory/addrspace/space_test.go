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
package addrspace_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/test"
)

// prg returns PRG data where the first byte of every 4KB page is the page
// number and the rest of the page is filled with the low byte of the
// offset.
func prg(size int) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = uint8(i)
		if i%addrspace.PageSize == 0 {
			d[i] = uint8(i / addrspace.PageSize)
		}
	}
	return d
}

func TestInitialMapping(t *testing.T) {
	s := addrspace.NewSpace(prg(0x8000), 0x800, 0x2000)

	// unmapped areas read as open bus
	test.Equate(t, s.Read(0x2000), addrspace.OpenBus)
	test.Equate(t, s.Read(0x5fff), addrspace.OpenBus)
	test.Equate(t, s.Read(0x8000), addrspace.OpenBus)
	test.Equate(t, s.Read(0xfffc), addrspace.OpenBus)

	// RAM is writable and mirrored
	test.ExpectedSuccess(t, s.Write(0x0010, 0x42))
	test.Equate(t, s.Read(0x0810), 0x42)
	test.Equate(t, s.Read(0x1810), 0x42)
	test.Equate(t, s.Physical(0x1810), s.Physical(0x0010))

	// SRAM is writable
	test.ExpectedSuccess(t, s.Write(0x7fff, 0x99))
	test.Equate(t, s.Read(0x7fff), 0x99)

	// open bus is not
	test.ExpectedFailure(t, s.Write(0x8000, 0x01))
	test.Equate(t, s.Read(0x8000), addrspace.OpenBus)

	s.ClearRAM()
	test.Equate(t, s.Read(0x0010), 0x00)
}

func TestWindowInvariant(t *testing.T) {
	s := addrspace.NewSpace(prg(0x10000), 0x800, 0x2000)

	test.ExpectedSuccess(t, s.MapPRG(8, 0x4000, 0x4000))
	test.ExpectedSuccess(t, s.MapPRG(12, 0xc000, 0x4000))

	b := s.Backing()
	for addr := 0x8000; addr <= 0xffff; addr += 0x123 {
		p := addr >> addrspace.PageShift
		test.Equate(t, s.Read(uint16(addr)), b[s.Window(p)+addr&(addrspace.PageSize-1)])
		test.Equate(t, s.Physical(uint16(addr)), s.Window(p)+addr&(addrspace.PageSize-1))
	}

	// the first byte of each window is the page number of the PRG data
	test.Equate(t, s.Read(0x8000), 0x04)
	test.Equate(t, s.Read(0xb000), 0x07)
	test.Equate(t, s.Read(0xc000), 0x0c)
	test.Equate(t, s.Read(0xf000), 0x0f)
	test.Equate(t, s.Read(0x8001), 0x01)

	// PRG is read only
	test.ExpectedFailure(t, s.Write(0x8001, 0xff))
	test.Equate(t, s.Read(0x8001), 0x01)
	test.ExpectedFailure(t, s.Writable(8))
	test.ExpectedSuccess(t, s.Writable(0))
}

func TestMapRangeErrors(t *testing.T) {
	s := addrspace.NewSpace(prg(0x8000), 0x800, 0x2000)
	o := s.Offset(addrspace.RegionPRG)

	err := s.MapRange(8, o+1, addrspace.PageSize)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.MisalignedRange))

	err = s.MapRange(8, o, 0x800)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.MisalignedRange))

	err = s.MapRange(8, o, 0)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.MisalignedRange))

	err = s.MapRange(15, o, 0x2000)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.TooManyWindows))

	err = s.MapPRG(8, 0x6000, 0x4000)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.OutOfBacking))

	// a range that straddles SRAM and PRG
	err = s.MapRange(8, s.Offset(addrspace.RegionSRAM)+addrspace.PageSize, 0x2000)
	test.ExpectedSuccess(t, curated.Is(err, addrspace.OutOfBacking))

	// nothing was mapped by the failed calls
	test.Equate(t, s.Read(0x8000), addrspace.OpenBus)
}

func TestOnRemap(t *testing.T) {
	s := addrspace.NewSpace(prg(0x8000), 0x800, 0x2000)

	var calls [][2]int
	s.OnRemap(func(first int, count int) {
		calls = append(calls, [2]int{first, count})
	})

	test.ExpectedSuccess(t, s.MapPRG(8, 0, 0x4000))
	test.Equate(t, len(calls), 1)
	test.Equate(t, calls[0][0], 8)
	test.Equate(t, calls[0][1], 4)

	// mapping the same range again changes nothing
	test.ExpectedSuccess(t, s.MapPRG(8, 0, 0x4000))
	test.Equate(t, len(calls), 1)

	// only the last two windows change
	test.ExpectedSuccess(t, s.MapPRG(8, 0, 0x2000))
	test.ExpectedSuccess(t, s.MapPRG(10, 0x4000, 0x2000))
	test.Equate(t, len(calls), 2)
	test.Equate(t, calls[1][0], 10)
	test.Equate(t, calls[1][1], 2)

	// disabling SRAM
	test.ExpectedSuccess(t, s.MapSRAM(false))
	test.Equate(t, s.Read(0x6000), addrspace.OpenBus)
	test.ExpectedFailure(t, s.Write(0x6000, 0x01))
	test.ExpectedSuccess(t, s.MapSRAM(true))
	test.ExpectedSuccess(t, s.Write(0x6000, 0x01))
}

func TestPageMask(t *testing.T) {
	for _, c := range []struct{ count, mask int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 3}, {4, 3}, {5, 7}, {8, 7},
		{9, 15}, {16, 15}, {17, 31}, {32, 31}, {33, 63},
	} {
		test.Equate(t, addrspace.PageMask(c.count), c.mask)
	}
}
