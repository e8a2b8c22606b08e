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

// MMC1 registers are loaded serially through a five bit shift register.
// Writing a value with bit 7 set resets the shift register. The fifth write
// copies the shift register to one of four internal registers, selected by
// bits 13 and 14 of the address of the fifth write.
//
//	0x8000 - 0x9fff	control: mirroring, PRG mode, CHR mode
//	0xa000 - 0xbfff	CHR bank 0
//	0xc000 - 0xdfff	CHR bank 1
//	0xe000 - 0xffff	PRG bank and SRAM disable
//
// cartridges:
//   - The Legend of Zelda
//   - Metroid
type mmc1 struct {
	bus mapper.Bus

	shift uint8
	count int

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

func newMMC1() mapper.Mapper {
	return &mmc1{}
}

// ID implements the mapper.Mapper interface.
func (m *mmc1) ID() int {
	return 1
}

// Name implements the mapper.Mapper interface.
func (m *mmc1) Name() string {
	return "MMC1"
}

// Init implements the mapper.Mapper interface.
func (m *mmc1) Init(bus mapper.Bus) error {
	m.bus = bus
	m.shift = 0
	m.count = 0

	// power on state fixes the last bank at 0xc000
	m.control = 0x0c
	m.chr0 = 0
	m.chr1 = 0
	m.prg = 0

	return m.update()
}

// OnWrite implements the mapper.Mapper interface.
func (m *mmc1) OnWrite(addr uint16, data uint8) error {
	if data&0x80 == 0x80 {
		m.shift = 0
		m.count = 0
		m.control |= 0x0c
		return m.update()
	}

	m.shift |= (data & 0x01) << m.count
	m.count++
	if m.count < 5 {
		return nil
	}

	v := m.shift
	m.shift = 0
	m.count = 0

	switch (addr >> 13) & 0x03 {
	case 0:
		m.control = v
	case 1:
		m.chr0 = v
	case 2:
		m.chr1 = v
	case 3:
		m.prg = v
	}

	return m.update()
}

func (m *mmc1) update() error {
	switch m.control & 0x03 {
	case 0:
		m.bus.SetMirroring(mapper.SingleLower)
	case 1:
		m.bus.SetMirroring(mapper.SingleUpper)
	case 2:
		m.bus.SetMirroring(mapper.Vertical)
	case 3:
		m.bus.SetMirroring(mapper.Horizontal)
	}

	bank := int(m.prg & 0x0f)

	var lo, hi int
	switch (m.control >> 2) & 0x03 {
	case 0, 1:
		lo = bank &^ 1
		hi = lo + 1
	case 2:
		lo = 0
		hi = bank
	case 3:
		lo = bank
		hi = lastBank(m.bus, 0x4000)
	}

	if err := mapBank(m.bus, page8000, lo, 0x4000); err != nil {
		return err
	}
	if err := mapBank(m.bus, pageC000, hi, 0x4000); err != nil {
		return err
	}

	if err := m.bus.MapSRAM(m.prg&0x10 == 0x00); err != nil {
		return err
	}

	if m.control&0x10 == 0x00 {
		chrBank(m.bus, 0x0000, int(m.chr0>>1), 0x2000)
	} else {
		chrBank(m.bus, 0x0000, int(m.chr0), 0x1000)
		chrBank(m.bus, 0x1000, int(m.chr1), 0x1000)
	}

	return nil
}
