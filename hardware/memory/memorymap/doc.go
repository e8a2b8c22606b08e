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
// Package memorymap facilitates the translation of addresses to primary
// address equivalents. The NES mirrors the 2KB of internal RAM four times
// between 0x0000 and 0x1fff and mirrors the eight PPU registers every eight
// bytes between 0x2000 and 0x3fff. Normalise() folds these mirrors onto the
// primary addresses. Addresses in other areas are not changed.
//
// The package also defines the origin and memtop of every area and the
// addresses of the interrupt vectors.
package memorymap
