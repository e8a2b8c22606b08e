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
	"encoding/binary"

	"github.com/jetsetilly/gophernes/dbt/host"
)

// Context is the execution context shared between the dispatcher and the
// translated code. The cycle countdown, the pending interrupt flags and the
// stack pointer live in the host data space so that translated code can
// refer to them by address. The dispatch table follows the variables.
type Context struct {
	data []byte

	// the source address that execution will resume from when control
	// returns to the dispatcher
	PC uint16

	// arena offset of the unit currently being executed
	Cursor int
}

func newContext(data []byte) *Context {
	return &Context{data: data}
}

// Cycles returns the number of cycles until the next scheduled event.
func (ctx *Context) Cycles() int32 {
	return int32(binary.LittleEndian.Uint32(ctx.data[host.CyclesOffset:]))
}

// SetCycles sets the cycle countdown.
func (ctx *Context) SetCycles(c int32) {
	binary.LittleEndian.PutUint32(ctx.data[host.CyclesOffset:], uint32(c))
}

// Spend subtracts the number of cycles from the countdown.
func (ctx *Context) Spend(c int32) {
	ctx.SetCycles(ctx.Cycles() - c)
}

// Pending returns the pending interrupt bits.
func (ctx *Context) Pending() uint8 {
	return ctx.data[host.PendingOffset]
}

// Raise sets pending interrupt bits.
func (ctx *Context) Raise(bits uint8) {
	ctx.data[host.PendingOffset] |= bits
}

// Acknowledge clears pending interrupt bits.
func (ctx *Context) Acknowledge(bits uint8) {
	ctx.data[host.PendingOffset] &^= bits
}

// SP returns the 6502 stack pointer.
func (ctx *Context) SP() uint8 {
	return ctx.data[host.StackPointerOffset]
}

// SetSP sets the 6502 stack pointer.
func (ctx *Context) SetSP(sp uint8) {
	ctx.data[host.StackPointerOffset] = sp
}

func (ctx *Context) reset() {
	clear(ctx.data)
	ctx.PC = 0
	ctx.Cursor = 0
}

// slot returns the value of the dispatch table slot for the source address.
// a value of zero means the address has no unit. otherwise the value is the
// arena offset of the unit plus one.
func (ctx *Context) slot(addr uint16) uint32 {
	return binary.LittleEndian.Uint32(ctx.data[host.TableOffset+int(addr)*host.SlotWidth:])
}

func (ctx *Context) setSlot(addr uint16, offset int) {
	binary.LittleEndian.PutUint32(ctx.data[host.TableOffset+int(addr)*host.SlotWidth:], uint32(offset+1))
}

// clearSlots empties count slots beginning with the slot for addr.
func (ctx *Context) clearSlots(addr int, count int) {
	o := host.TableOffset + addr*host.SlotWidth
	clear(ctx.data[o : o+count*host.SlotWidth])
}

// variable returns the offset in the data space of a host address. the width
// is the number of bytes that will be accessed at the address.
func (ctx *Context) variable(addr uint32, width int) (int, bool) {
	return host.DataOffset(addr, width)
}
