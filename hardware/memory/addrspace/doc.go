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
// Package addrspace implements the 64KB address space seen by the 6502.
//
// All memory visible to the CPU lives in one backing buffer: internal RAM,
// cartridge SRAM, the entire PRG ROM and a single page of open bus. The
// address space is divided into sixteen windows of 4KB and every window
// points somewhere into the backing buffer. The live byte for an address is
// always:
//
//	backing[window[address>>12] + address]
//
// Bank switching is nothing more than changing the window bases with
// MapRange() or MapPRG(). Because a bank switch can cause the same logical
// address to refer to different code, Physical() exposes the backing offset
// of an address and OnRemap() lets observers react to windows that have
// changed.
//
// RAM mirrors are folded with memorymap.Normalise() before indexing so that
// the four copies of the 2KB of internal RAM share storage.
package addrspace
