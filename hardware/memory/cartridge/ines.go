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
	"bytes"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// InvalidINES is returned by ParseINES() for data that is not an iNES file.
const InvalidINES = "cartridge: invalid iNES data: %s"

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

const (
	inesHeader  = 16
	inesTrainer = 512
)

// IsINES returns true if the data begins with the iNES magic number.
func IsINES(data []uint8) bool {
	return bytes.HasPrefix(data, inesMagic)
}

// ParseINES creates a cartridge from the contents of an iNES file.
func ParseINES(data []uint8) (*Cartridge, error) {
	if len(data) < inesHeader || !IsINES(data) {
		return nil, curated.Errorf(InvalidINES, "missing header")
	}

	prgSize := int(data[4]) * 0x4000
	chrSize := int(data[5]) * 0x2000
	flags6 := data[6]
	flags7 := data[7]

	o := inesHeader
	if flags6&0x04 == 0x04 {
		o += inesTrainer
	}

	if len(data) < o+prgSize+chrSize {
		return nil, curated.Errorf(InvalidINES, "file is truncated")
	}

	cart, err := NewCartridge(data[o:o+prgSize], data[o+prgSize:o+prgSize+chrSize])
	if err != nil {
		return nil, curated.Errorf(InvalidINES, err)
	}

	cart.MapperID = int(flags7&0xf0) | int(flags6>>4)
	cart.Battery = flags6&0x02 == 0x02

	switch {
	case flags6&0x08 == 0x08:
		cart.Mirroring = mapper.FourScreen
	case flags6&0x01 == 0x01:
		cart.Mirroring = mapper.Vertical
	default:
		cart.Mirroring = mapper.Horizontal
	}

	return cart, nil
}
