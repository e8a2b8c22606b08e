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
// Package cartridge fully implements loading of NES cartridge data and the
// mapper chips that switch banks of the cartridge into the address space.
//
// A Cartridge holds the PRG and CHR data and implements the mapper.Bus
// interface. Cartridge data can be created from raw PRG and CHR buffers
// with NewCartridge() or from an iNES file with ParseINES().
//
// Mapper chips are created by number from a Registry. The Registry is
// built once from a static list of supported mappers:
//
//	0  NROM
//	1  MMC1
//	2  UxROM
//	3  CNROM
//	4  MMC3
//	7  AxROM
//
// Attach() connects the cartridge to an address space and initialises the
// mapper. The address space must have been created from the cartridge's
// PRG data. A failure during initialisation is fatal for the cartridge and
// is returned as an error.
package cartridge
