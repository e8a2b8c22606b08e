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

// AxROM switches 32KB banks of PRG. Bit 4 of the written value selects which
// nametable is used for single screen mirroring. Graphics are in CHR RAM.
//
// cartridges:
//   - Battletoads
//   - Marble Madness
type axrom struct {
	bus mapper.Bus
}

func newAxROM() mapper.Mapper {
	return &axrom{}
}

// ID implements the mapper.Mapper interface.
func (m *axrom) ID() int {
	return 7
}

// Name implements the mapper.Mapper interface.
func (m *axrom) Name() string {
	return "AxROM"
}

// Init implements the mapper.Mapper interface.
func (m *axrom) Init(bus mapper.Bus) error {
	m.bus = bus
	return m.OnWrite(0x8000, 0x00)
}

// OnWrite implements the mapper.Mapper interface.
func (m *axrom) OnWrite(_ uint16, data uint8) error {
	if data&0x10 == 0x10 {
		m.bus.SetMirroring(mapper.SingleUpper)
	} else {
		m.bus.SetMirroring(mapper.SingleLower)
	}
	return mapBank(m.bus, page8000, int(data&0x07), 0x8000)
}
