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
// Package registers implements the registers of the 2A03, the 6502 variant
// found in the NES. The 8 bit Register type is used for A, X and Y and
// defines the arithmetic, logical and shift operations used by the host
// executor. Flags are not updated by the Register type. Instead, the
// results of operations are used to set the flags of the StatusRegister.
// For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// The 2A03 has no decimal mode. The DecimalMode flag of the StatusRegister
// can be set and cleared but has no effect on Add() or Subtract().
//
// The stack pointer is not represented by this package. It is mirrored into
// the host data space so that translated code can address it directly.
package registers
