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
package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Expansion:
		return "Expansion"
	case SRAM:
		return "SRAM"
	case PRG:
		return "PRG"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Expansion
	SRAM
	PRG
)

// The origin and memory top for each area of memory.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginSRAM      = uint16(0x6000)
	MemtopSRAM      = uint16(0x7fff)
	OriginPRG       = uint16(0x8000)
	MemtopPRG       = uint16(0xffff)
)

// Sizes of the internal memories.
const (
	RAMSize  = 0x0800
	SRAMSize = 0x2000
)

// Within the RAM and PPU mirrors, only these bits are relevant.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// Registers of interest to the dispatcher.
const (
	PPUCTRL   = uint16(0x2000)
	PPUSTATUS = uint16(0x2002)
	OAMDATA   = uint16(0x2004)
	OAMDMA    = uint16(0x4014)
	SNDCHN    = uint16(0x4015)
	JOY1      = uint16(0x4016)
	JOY2      = uint16(0x4017)
)

// The bottom of the stack page.
const OriginStack = uint16(0x0100)

// Interrupt vectors.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address is in.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address & MaskPPU, PPU
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopExpansion:
		return address, Expansion
	case address <= MemtopSRAM:
		return address, SRAM
	}
	return address, PRG
}

// Normalise folds mirrored addresses onto the primary address.
func Normalise(address uint16) uint16 {
	a, _ := MapAddress(address)
	return a
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
