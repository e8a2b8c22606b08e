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

// UxROM switches a 16KB bank into 0x8000. The final 16KB of PRG is fixed at
// 0xc000. Graphics are in CHR RAM. Any write to the cartridge space selects
// the bank.
//
// cartridges:
//   - Mega Man
//   - Castlevania
type uxrom struct {
	bus  mapper.Bus
	bank int
}

func newUxROM() mapper.Mapper {
	return &uxrom{}
}

// ID implements the mapper.Mapper interface.
func (m *uxrom) ID() int {
	return 2
}

// Name implements the mapper.Mapper interface.
func (m *uxrom) Name() string {
	return "UxROM"
}

// Init implements the mapper.Mapper interface.
func (m *uxrom) Init(bus mapper.Bus) error {
	m.bus = bus
	m.bank = 0
	chrBank(bus, 0, 0, PatternSize)
	if err := mapBank(bus, page8000, 0, 0x4000); err != nil {
		return err
	}
	return mapBank(bus, pageC000, lastBank(bus, 0x4000), 0x4000)
}

// OnWrite implements the mapper.Mapper interface.
func (m *uxrom) OnWrite(_ uint16, data uint8) error {
	m.bank = int(data)
	return mapBank(m.bus, page8000, m.bank, 0x4000)
}
