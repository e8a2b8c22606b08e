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
// Package arena provides fixed-capacity regions of memory for translated
// code and for the host data space. A region is reserved once when the
// Arena is created and is never grown or moved because translated code
// contains the addresses of other translated code and of the data space.
//
// On unix systems the region is mapped with mmap(). On other systems it is
// allocated on the heap.
//
// Translated code is added to the arena through a Builder. The Builder
// copies template bytes into the region and records the patches that are
// to be made to those bytes. The patches are applied, all at once, when the
// unit is committed. Rollback() discards an uncommitted unit.
package arena
