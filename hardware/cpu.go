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
package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
)

// CPU is the register file of the 6502. The program counter and the stack
// pointer are not included. The program counter is implied by the position
// of the executor in the translated code and the stack pointer is kept in
// the execution Context.
type CPU struct {
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	Status registers.StatusRegister
}

func newCPU() *CPU {
	return &CPU{
		A: registers.NewRegister(0, "A"),
		X: registers.NewRegister(0, "X"),
		Y: registers.NewRegister(0, "Y"),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s=%s", mc.A, mc.X, mc.Y, mc.Status.Label(), mc.Status)
}

// Reset the registers. The interrupt disable flag is set.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
}
