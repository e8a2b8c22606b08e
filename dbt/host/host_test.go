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
package host_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/test"
)

func TestSlotAddress(t *testing.T) {
	for _, a := range []uint16{0x0000, 0x8000, 0xfffc, 0xffff} {
		src, ok := host.SlotSource(host.SlotAddress(a))
		test.ExpectedSuccess(t, ok)
		test.Equate(t, src, a)
	}

	_, ok := host.SlotSource(host.VariableAddress(host.Cycles))
	test.ExpectedFailure(t, ok)
	_, ok = host.SlotSource(host.SlotAddress(0x8000) + 1)
	test.ExpectedFailure(t, ok)
}

func TestVariables(t *testing.T) {
	v, ok := host.VariableByName("CYCLES")
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v == host.Cycles, true)

	_, ok = host.VariableByName("nosuchvariable")
	test.ExpectedFailure(t, ok)

	o, ok := host.DataOffset(host.VariableAddress(host.StackPointer), 1)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, o, host.StackPointerOffset)

	_, ok = host.DataOffset(host.DataBase+host.DataSize-2, 4)
	test.ExpectedFailure(t, ok)
}

func TestDisassemble(t *testing.T) {
	cyc := host.VariableAddress(host.Cycles)
	slot := host.SlotAddress(0x8000)

	code := []byte{
		byte(host.CYC), byte(cyc), byte(cyc >> 8), byte(cyc >> 16), byte(cyc >> 24), 3,
		byte(host.EAZX), 0x10,
		byte(host.LD),
		byte(host.PUT), byte(host.A),
		byte(host.BR), 0xd0, 0x10, 0x80,
		byte(host.JMP), byte(slot), byte(slot >> 8), byte(slot >> 16), byte(slot >> 24),
		byte(host.NOP), byte(host.NOP),
	}

	w := &test.Writer{}
	err := host.Disassemble(w, code)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, w.Contains("CYC  cycles, 3"))
	test.ExpectedSuccess(t, w.Contains("EAZX $10,X"))
	test.ExpectedSuccess(t, w.Contains("PUT  A"))
	test.ExpectedSuccess(t, w.Contains("BR   Z=0, $8010"))
	test.ExpectedSuccess(t, w.Contains("JMP  [$8000]"))
	test.ExpectedSuccess(t, w.Contains("NOP  x2"))
}

func TestDecodeErrors(t *testing.T) {
	_, err := host.Decode([]byte{0xff})
	test.ExpectedSuccess(t, curated.Is(err, host.UnknownOpcode))

	d, err := host.Decode([]byte{byte(host.NOP), byte(host.GO), 0x00})
	test.ExpectedSuccess(t, curated.Is(err, host.TruncatedStream))
	test.Equate(t, len(d), 1)
}
