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
package cartridge

import (
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// window index for the start of each 8KB segment of cartridge space.
const (
	page8000 = int(memorymap.OriginPRG >> addrspace.PageShift)
	pageA000 = page8000 + 2
	pageC000 = page8000 + 4
	pageE000 = page8000 + 6
)

// wrap reduces a bank number to the number of banks available.
func wrap(bank int, count int) int {
	if count <= 0 {
		return 0
	}
	return (bank & addrspace.PageMask(count)) % count
}

// mapBank maps PRG bank of the specified size into the windows beginning
// at page. the bank number wraps on the number of banks in the PRG data. if
// the PRG data is smaller than the bank size then the PRG data is mirrored
// to fill the bank.
func mapBank(bus mapper.Bus, page int, bank int, size int) error {
	prg := bus.PRGSize()
	if prg < size {
		for o := 0; o < size; o += prg {
			if err := bus.MapPRG(page+o>>addrspace.PageShift, 0, prg); err != nil {
				return err
			}
		}
		return nil
	}
	return bus.MapPRG(page, wrap(bank, prg/size)*size, size)
}

// lastBank returns the index of the final bank of the specified size.
func lastBank(bus mapper.Bus, size int) int {
	n := bus.PRGSize() / size
	if n == 0 {
		return 0
	}
	return n - 1
}

// chrBank copies a CHR bank of the specified size into the pattern table at
// dest. does nothing for cartridges with CHR RAM.
func chrBank(bus mapper.Bus, dest int, bank int, size int) {
	n := bus.CHRSize() / size
	if n == 0 {
		return
	}
	bus.CopyCHR(dest, wrap(bank, n)*size, size)
}
