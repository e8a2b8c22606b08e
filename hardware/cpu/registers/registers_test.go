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
package registers_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "A")
	test.Equate(t, r8.IsZero(), true)
	test.Equate(t, r8.Label(), "A")

	// loading & addition
	r8.Load(127)
	test.Equate(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.Equate(t, r8.Value(), 129)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.Equate(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), 1)

	r8.Load(255)
	carry, _ = r8.Add(0, true)
	test.Equate(t, carry, true)
	test.Equate(t, r8.Value(), 0)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.Equate(t, r8.Value(), 10)

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	test.Equate(t, r8.Value(), 0xfb)
	test.Equate(t, carry, false)

	r8.Load(0)
	r8.Subtract(1, true)
	test.Equate(t, r8.Value(), 255)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.Equate(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.Equate(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.Equate(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.LSR()
	test.Equate(t, r8.Value(), 0x7f)
	test.Equate(t, carry, false)
	carry = r8.LSR()
	test.Equate(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.Equate(t, r8.Value(), 0xfe)
	test.Equate(t, carry, true)
	carry = r8.ROR(true)
	test.Equate(t, r8.Value(), 0xff)
	test.Equate(t, carry, false)
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0x40, "X")

	carry, zero, sign := r8.Compare(0x40)
	test.Equate(t, carry, true)
	test.Equate(t, zero, true)
	test.Equate(t, sign, false)

	carry, zero, sign = r8.Compare(0x41)
	test.Equate(t, carry, false)
	test.Equate(t, zero, false)
	test.Equate(t, sign, true)

	// compare does not alter the register
	test.Equate(t, r8.Value(), 0x40)
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.Equate(t, sr.String(), "sv-bdizc")
	test.Equate(t, sr.Value(), 0x20)

	sr.FromValue(0xff)
	test.Equate(t, sr.String(), "SV-BDIZC")
	test.Equate(t, sr.Value(), 0xff)

	sr.Set(registers.CarryBit|registers.DecimalModeBit, false)
	test.Equate(t, sr.String(), "SV-BdIZc")

	sr.SetNZ(0)
	test.Equate(t, sr.Zero, true)
	test.Equate(t, sr.Sign, false)

	sr.Reset()
	test.Equate(t, sr.Value(), 0x20)
}
