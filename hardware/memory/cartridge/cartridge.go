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
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinel errors for the cartridge package.
const (
	InvalidPRG   = "cartridge: PRG data must be a non-zero multiple of 8KB (%d bytes)"
	InvalidCHR   = "cartridge: CHR data must be a multiple of 1KB (%d bytes)"
	AttachFailed = "cartridge: %s: %v"
	NotAttached  = "cartridge: no mapper attached"
)

// PatternSize is the size of the pattern table visible to the PPU.
const PatternSize = 0x2000

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Hash string

	// the mapper number suggested by the cartridge data. zero if the
	// cartridge was created from raw buffers
	MapperID int

	PRG []uint8
	CHR []uint8

	// the current contents of the pattern table. when CHR is empty the
	// pattern table is RAM and is written by the PPU collaborator
	Pattern [PatternSize]uint8

	Mirroring mapper.Mirroring
	Battery   bool

	space  *addrspace.Space
	mapper mapper.Mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The PRG and CHR slices are not copied.
func NewCartridge(prg []uint8, chr []uint8) (*Cartridge, error) {
	if len(prg) == 0 || len(prg)%0x2000 != 0 {
		return nil, curated.Errorf(InvalidPRG, len(prg))
	}
	if len(chr)%0x400 != 0 {
		return nil, curated.Errorf(InvalidCHR, len(chr))
	}

	h := sha1.New()
	h.Write(prg)
	h.Write(chr)

	return &Cartridge{
		Hash:      fmt.Sprintf("%x", h.Sum(nil)),
		PRG:       prg,
		CHR:       chr,
		Mirroring: mapper.Horizontal,
	}, nil
}

func (cart *Cartridge) String() string {
	s := fmt.Sprintf("PRG %dKB, ", len(cart.PRG)/1024)
	if cart.HasCHRRAM() {
		s = fmt.Sprintf("%sCHR RAM", s)
	} else {
		s = fmt.Sprintf("%sCHR %dKB", s, len(cart.CHR)/1024)
	}
	if cart.mapper != nil {
		s = fmt.Sprintf("%s [%s]", s, cart.mapper.Name())
	}
	return fmt.Sprintf("%s, %s mirroring", s, cart.Mirroring)
}

// HasCHRRAM returns true if the pattern table is RAM.
func (cart *Cartridge) HasCHRRAM() bool {
	return len(cart.CHR) == 0
}

// Mapper returns the attached mapper. Returns nil if the cartridge has not
// been attached.
func (cart *Cartridge) Mapper() mapper.Mapper {
	return cart.mapper
}

// Attach the cartridge to the address space and initialise the mapper. The
// address space should have been created with the cartridge's PRG data.
func (cart *Cartridge) Attach(space *addrspace.Space, m mapper.Mapper) error {
	cart.space = space
	cart.mapper = m

	if err := m.Init(cart); err != nil {
		cart.mapper = nil
		return curated.Errorf(AttachFailed, m.Name(), err)
	}

	logger.Logf(logger.Allow, "cartridge", "attached %s", cart)

	return nil
}

// Write forwards a write in the cartridge address range to the mapper.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	if cart.mapper == nil {
		return curated.Errorf(NotAttached)
	}
	return cart.mapper.OnWrite(addr, data)
}

// Scanline is called once per visible scanline. Returns true if the mapper
// is asserting the IRQ line.
func (cart *Cartridge) Scanline() bool {
	if sc, ok := cart.mapper.(mapper.ScanlineCounter); ok {
		return sc.Scanline()
	}
	return false
}

// MapPRG implements the mapper.Bus interface.
func (cart *Cartridge) MapPRG(page int, offset int, size int) error {
	return cart.space.MapPRG(page, offset, size)
}

// MapSRAM implements the mapper.Bus interface.
func (cart *Cartridge) MapSRAM(enable bool) error {
	return cart.space.MapSRAM(enable)
}

// PRGSize implements the mapper.Bus interface.
func (cart *Cartridge) PRGSize() int {
	return len(cart.PRG)
}

// CHRSize implements the mapper.Bus interface.
func (cart *Cartridge) CHRSize() int {
	return len(cart.CHR)
}

// CopyCHR implements the mapper.Bus interface.
func (cart *Cartridge) CopyCHR(dest int, src int, size int) {
	if len(cart.CHR) == 0 {
		return
	}
	for i := 0; i < size; i++ {
		cart.Pattern[(dest+i)%PatternSize] = cart.CHR[(src+i)%len(cart.CHR)]
	}
}

// SetMirroring implements the mapper.Bus interface.
func (cart *Cartridge) SetMirroring(m mapper.Mirroring) {
	cart.Mirroring = m
}
