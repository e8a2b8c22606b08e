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
// Package translator walks the dictionary against the bytes of the source
// address space and emits units of host code into the code arena.
//
// A unit begins at an origin address and ends with the first pattern that
// has a stop directive. A unit also ends if the next instruction would begin
// in a different address window to the origin. In that case the unit ends
// with a GO instruction to the next address so that a change to the other
// window can never leave stale code reachable from this unit.
//
// When no pattern matches, the OnFault callback is called immediately,
// before any more bytes are read. By default a TRAP instruction is then
// emitted and the unit ends. If the IgnoreUnknown preference is set the byte
// is skipped instead.
package translator
