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

// CNROM has fixed PRG, the same as NROM, and switches 8KB banks of CHR.
//
// cartridges:
//   - Gradius
//   - Arkanoid
type cnrom struct {
	bus mapper.Bus
}

func newCNROM() mapper.Mapper {
	return &cnrom{}
}

// ID implements the mapper.Mapper interface.
func (m *cnrom) ID() int {
	return 3
}

// Name implements the mapper.Mapper interface.
func (m *cnrom) Name() string {
	return "CNROM"
}

// Init implements the mapper.Mapper interface.
func (m *cnrom) Init(bus mapper.Bus) error {
	m.bus = bus
	chrBank(bus, 0, 0, PatternSize)
	return mapBank(bus, page8000, 0, 0x8000)
}

// OnWrite implements the mapper.Mapper interface.
func (m *cnrom) OnWrite(_ uint16, data uint8) error {
	chrBank(m.bus, 0, int(data), PatternSize)
	return nil
}
