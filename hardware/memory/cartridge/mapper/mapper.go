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
// Package mapper defines the contract between the NES and a cartridge
// mapper chip. The package exists separately from the cartridge package so
// that mapper implementations and the types that drive them do not depend
// on one another.
package mapper

// Mirroring describes how the four logical nametables are arranged in the
// two physical nametables of the console.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleLower
	SingleUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleLower:
		return "single lower"
	case SingleUpper:
		return "single upper"
	case FourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// Bus is the interface a mapper uses to reconfigure the cartridge. All
// offsets and sizes are measured in bytes.
type Bus interface {
	// MapPRG maps a range of PRG data starting at offset into the address
	// windows beginning at page. the size must be a multiple of the window
	// size. an error from MapPRG() is fatal for the cartridge
	MapPRG(page int, offset int, size int) error

	// MapSRAM enables or disables the battery backed RAM at 0x6000
	MapSRAM(enable bool) error

	PRGSize() int
	CHRSize() int

	// CopyCHR copies graphics data into the 8KB pattern table. the source
	// offset wraps on the size of the CHR data
	CopyCHR(dest int, src int, size int)

	SetMirroring(m Mirroring)
}

// Mapper implementations respond to writes to the cartridge address range
// by changing the mapping of the cartridge memory.
type Mapper interface {
	// the iNES mapper number
	ID() int
	Name() string

	// Init is called once when the cartridge is attached. it must install the
	// initial PRG and CHR mapping and the mirroring mode
	Init(bus Bus) error

	// OnWrite is called for every write to the range 0x8000 to 0xffff
	OnWrite(addr uint16, data uint8) error
}

// ScanlineCounter is implemented by mappers that count scanlines and raise
// an IRQ. Scanline() is called once per visible scanline and returns true
// if the IRQ line should be asserted.
type ScanlineCounter interface {
	Scanline() bool
}
