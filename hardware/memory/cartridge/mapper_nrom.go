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

// NROM is the absence of a mapper. Either 16KB of PRG mirrored at 0x8000 and
// 0xc000 or 32KB of PRG filling the entire cartridge space. 8KB of CHR.
//
// cartridges:
//   - Super Mario Bros.
//   - Donkey Kong
type nrom struct {
	bus mapper.Bus
}

func newNROM() mapper.Mapper {
	return &nrom{}
}

// ID implements the mapper.Mapper interface.
func (m *nrom) ID() int {
	return 0
}

// Name implements the mapper.Mapper interface.
func (m *nrom) Name() string {
	return "NROM"
}

// Init implements the mapper.Mapper interface.
func (m *nrom) Init(bus mapper.Bus) error {
	m.bus = bus
	chrBank(bus, 0, 0, PatternSize)
	return mapBank(bus, page8000, 0, 0x8000)
}

// OnWrite implements the mapper.Mapper interface.
func (m *nrom) OnWrite(_ uint16, _ uint8) error {
	return nil
}
