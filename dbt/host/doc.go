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
// Package host defines the instruction set that translated code is emitted
// in. It is a compact byte code with embedded absolute host addresses,
// interpreted by the executor in the hardware package. Templates in the
// rules language are written in this instruction set.
//
// Every instruction is a single opcode byte followed by its operands.
// Multi-byte operands are little-endian. Length() returns the total length
// of an instruction and Disassemble() renders a sequence of instructions in
// a form suitable for logging.
//
// The executor works with two scratch registers that are not visible to
// the 6502. T holds the effective address computed by the addressing
// instructions and V holds the value being worked on. For example, the 6502
// instruction "LDA $10,X" is written as:
//
//	EAZX 10   ; T = (0x10 + X) & 0xff
//	LD        ; V = read(T)
//	PUT A     ; A = V and set N/Z
//
// Host addresses refer to the host data space. The data space begins at
// DataBase and contains the runtime variables followed by the dispatch
// table. See Variable, VariableAddress() and SlotAddress().
package host
