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
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// MMC3 switches 8KB banks of PRG and 1KB or 2KB banks of CHR. It also counts
// scanlines and raises an IRQ when the counter reaches zero.
//
// Registers are at even and odd addresses in each 8KB segment of cartridge
// space:
//
//	0x8000 even	bank select
//	0x8000 odd	bank data
//	0xa000 even	mirroring
//	0xa000 odd	SRAM protect
//	0xc000 even	IRQ latch
//	0xc000 odd	IRQ reload
//	0xe000 even	IRQ disable
//	0xe000 odd	IRQ enable
//
// cartridges:
//   - Super Mario Bros. 3
//   - Kirby's Adventure
type mmc3 struct {
	bus mapper.Bus

	selected uint8
	regs     [8]uint8

	// swap 0x8000 and 0xc000 segments
	prgMode bool

	// swap pattern table halves
	chrMode bool

	latch   uint8
	counter uint8
	reload  bool
	enabled bool
}

func newMMC3() mapper.Mapper {
	return &mmc3{}
}

// ID implements the mapper.Mapper interface.
func (m *mmc3) ID() int {
	return 4
}

// Name implements the mapper.Mapper interface.
func (m *mmc3) Name() string {
	return "MMC3"
}

// Init implements the mapper.Mapper interface.
func (m *mmc3) Init(bus mapper.Bus) error {
	m.bus = bus
	m.selected = 0
	m.regs = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
	m.prgMode = false
	m.chrMode = false
	m.latch = 0
	m.counter = 0
	m.reload = false
	m.enabled = false
	return m.update()
}

// OnWrite implements the mapper.Mapper interface.
func (m *mmc3) OnWrite(addr uint16, data uint8) error {
	even := addr&0x01 == 0x00

	switch addr & 0xe000 {
	case 0x8000:
		if even {
			m.selected = data & 0x07
			m.prgMode = data&0x40 == 0x40
			m.chrMode = data&0x80 == 0x80
		} else {
			m.regs[m.selected] = data
		}
		return m.update()

	case 0xa000:
		if even {
			if data&0x01 == 0x00 {
				m.bus.SetMirroring(mapper.Vertical)
			} else {
				m.bus.SetMirroring(mapper.Horizontal)
			}
			return nil
		}
		return m.bus.MapSRAM(data&0x80 == 0x80)

	case 0xc000:
		if even {
			m.latch = data
		} else {
			m.counter = 0
			m.reload = true
		}

	case 0xe000:
		m.enabled = !even
	}

	return nil
}

func (m *mmc3) update() error {
	second := lastBank(m.bus, 0x2000) - 1
	if second < 0 {
		second = 0
	}

	segments := [4]int{
		int(m.regs[6] & 0x3f),
		int(m.regs[7] & 0x3f),
		second,
		lastBank(m.bus, 0x2000),
	}
	if m.prgMode {
		segments[0], segments[2] = segments[2], segments[0]
	}

	for i, bank := range segments {
		if err := mapBank(m.bus, page8000+i*2, bank, 0x2000); err != nil {
			return err
		}
	}

	var invert int
	if m.chrMode {
		invert = 0x1000
	}

	// two 2KB banks and four 1KB banks. the low bit of the 2KB bank
	// registers is ignored
	chrBank(m.bus, 0x0000^invert, int(m.regs[0]>>1), 0x0800)
	chrBank(m.bus, 0x0800^invert, int(m.regs[1]>>1), 0x0800)
	for i := 0; i < 4; i++ {
		chrBank(m.bus, (0x1000+i*0x0400)^invert, int(m.regs[2+i]), 0x0400)
	}

	return nil
}

// Scanline implements the mapper.ScanlineCounter interface.
func (m *mmc3) Scanline() bool {
	if m.counter == 0 || m.reload {
		m.counter = m.latch
		m.reload = false
	} else {
		m.counter--
	}
	return m.counter == 0 && m.enabled
}
