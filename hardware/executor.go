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

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Sentinel errors raised by the executor.
const (
	BadHostAddress    = "nes: bad host address (%#08x) at arena offset %#x"
	UnknownHostOpcode = "nes: unknown host opcode (%#02x) at arena offset %#x"
)

// reasons for the executor returning to the dispatcher.
type exit int

const (
	// the target address has no unit or the cycle countdown has expired
	exitDispatch exit = iota

	// an interrupt is pending and is not masked
	exitInterrupt

	// the CPU has executed an instruction that stops it
	exitJam

	// the error field of the NES has been set
	exitError
)

// interruptible returns true if there is a pending interrupt that the CPU
// will respond to.
func (nes *NES) interruptible() bool {
	p := nes.ctx.Pending()
	return p&host.PendingNMI == host.PendingNMI || (p&host.PendingIRQ == host.PendingIRQ && !nes.CPU.Status.InterruptDisable)
}

// taken returns true if the condition of a 6502 branch opcode is met. bits
// 6 and 7 select the flag and bit 5 is the value the flag must have.
func taken(sr registers.StatusRegister, cond uint8) bool {
	var f bool
	switch cond >> 6 {
	case 0:
		f = sr.Sign
	case 1:
		f = sr.Overflow
	case 2:
		f = sr.Carry
	case 3:
		f = sr.Zero
	}
	return f == (cond&0x20 == 0x20)
}

// execute translated code beginning at the arena offset. returns the source
// address at which execution should continue and the reason for returning.
func (nes *NES) execute(cursor int) (uint16, exit) {
	code := nes.code.Bytes()
	mc := nes.CPU
	ctx := nes.ctx

	// the effective address and the value being worked on
	var t uint16
	var v uint8

	// scratch register for shifts
	r := registers.NewRegister(0, "V")

	word := func(o int) uint16 {
		return binary.LittleEndian.Uint16(code[o:])
	}

	long := func(o int) uint32 {
		return binary.LittleEndian.Uint32(code[o:])
	}

	zeroPage := func(z uint8) uint16 {
		return uint16(nes.Space.Read(uint16(z))) | uint16(nes.Space.Read(uint16(z+1)))<<8
	}

	bad := func(pc int, addr uint32) (uint16, exit) {
		nes.err = curated.Errorf(BadHostAddress, addr, pc)
		return ctx.PC, exitError
	}

	reg := func(n uint8) *registers.Register {
		switch host.Register(n) {
		case host.X:
			return &mc.X
		case host.Y:
			return &mc.Y
		}
		return &mc.A
	}

	pc := cursor

	for {
		var target uint16
		jump := false

		op := host.Opcode(code[pc])
		switch op {
		case host.NOP:
			pc++

		case host.TRAP:
			return word(pc + 1), exitJam

		case host.CYC:
			o, ok := ctx.variable(long(pc+1), 4)
			if !ok {
				return bad(pc, long(pc+1))
			}
			c := int32(binary.LittleEndian.Uint32(ctx.data[o:])) - int32(code[pc+5])
			binary.LittleEndian.PutUint32(ctx.data[o:], uint32(c))
			pc += 6

		case host.SKIP:
			o, ok := ctx.variable(long(pc+1), 4)
			if !ok {
				return bad(pc, long(pc+1))
			}
			binary.LittleEndian.PutUint32(ctx.data[o:], 0)
			pc += 5

		case host.POLL:
			o, ok := ctx.variable(long(pc+1), 1)
			if !ok {
				return bad(pc, long(pc+1))
			}
			if ctx.data[o] != 0 && nes.interruptible() {
				return word(pc + 5), exitInterrupt
			}
			pc += 7

		case host.EAZ:
			t = uint16(code[pc+1])
			pc += 2

		case host.EAZX:
			t = uint16(code[pc+1] + mc.X.Value())
			pc += 2

		case host.EAZY:
			t = uint16(code[pc+1] + mc.Y.Value())
			pc += 2

		case host.EAA:
			t = word(pc + 1)
			pc += 3

		case host.EAAX:
			t = word(pc+1) + uint16(mc.X.Value())
			pc += 3

		case host.EAAY:
			t = word(pc+1) + uint16(mc.Y.Value())
			pc += 3

		case host.EAIX:
			t = zeroPage(code[pc+1] + mc.X.Value())
			pc += 2

		case host.EAIY:
			t = zeroPage(code[pc+1]) + uint16(mc.Y.Value())
			pc += 2

		case host.EAI:
			// the high byte of the pointer is read from the same page as
			// the low byte
			a := word(pc + 1)
			t = uint16(nes.read(a)) | uint16(nes.read(a&0xff00|uint16(uint8(a)+1)))<<8
			pc += 3

		case host.IMM:
			v = code[pc+1]
			pc += 2

		case host.LD:
			v = nes.read(t)
			pc++

		case host.ST:
			if err := nes.write(t, v); err != nil {
				nes.err = err
				return ctx.PC, exitError
			}
			pc++

		case host.GET:
			if host.Register(code[pc+1]) == host.S {
				v = ctx.SP()
			} else {
				v = reg(code[pc+1]).Value()
			}
			pc += 2

		case host.PUT:
			if host.Register(code[pc+1]) == host.S {
				ctx.SetSP(v)
			} else {
				reg(code[pc+1]).Load(v)
				mc.Status.SetNZ(v)
			}
			pc += 2

		case host.ORA:
			mc.A.ORA(v)
			mc.Status.SetNZ(mc.A.Value())
			pc++

		case host.AND:
			mc.A.AND(v)
			mc.Status.SetNZ(mc.A.Value())
			pc++

		case host.EOR:
			mc.A.EOR(v)
			mc.Status.SetNZ(mc.A.Value())
			pc++

		case host.ADC:
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
			mc.Status.SetNZ(mc.A.Value())
			pc++

		case host.SBC:
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
			mc.Status.SetNZ(mc.A.Value())
			pc++

		case host.CMP:
			mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = reg(code[pc+1]).Compare(v)
			pc += 2

		case host.BIT:
			mc.Status.Sign = v&0x80 == 0x80
			mc.Status.Overflow = v&0x40 == 0x40
			mc.Status.Zero = v&mc.A.Value() == 0
			pc++

		case host.ASL:
			r.Load(v)
			mc.Status.Carry = r.ASL()
			v = r.Value()
			mc.Status.SetNZ(v)
			pc++

		case host.LSR:
			r.Load(v)
			mc.Status.Carry = r.LSR()
			v = r.Value()
			mc.Status.SetNZ(v)
			pc++

		case host.ROL:
			r.Load(v)
			mc.Status.Carry = r.ROL(mc.Status.Carry)
			v = r.Value()
			mc.Status.SetNZ(v)
			pc++

		case host.ROR:
			r.Load(v)
			mc.Status.Carry = r.ROR(mc.Status.Carry)
			v = r.Value()
			mc.Status.SetNZ(v)
			pc++

		case host.INC:
			v++
			mc.Status.SetNZ(v)
			pc++

		case host.DEC:
			v--
			mc.Status.SetNZ(v)
			pc++

		case host.SETF:
			mc.Status.Set(code[pc+1], true)
			pc += 2

		case host.CLRF:
			mc.Status.Set(code[pc+1], false)
			pc += 2

		case host.PUSH:
			nes.push(v)
			pc++

		case host.PULL:
			v = nes.pull()
			pc++

		case host.GETP:
			v = mc.Status.Value() | registers.BreakBit | registers.UnusedBit
			pc++

		case host.PUTP:
			mc.Status.FromValue(v)
			mc.Status.Break = false
			pc++

		case host.BR:
			if taken(mc.Status, code[pc+1]) {
				target = word(pc + 2)
				ctx.Spend(1)
				jump = true
			} else {
				pc += 4
			}

		case host.JMP:
			s, ok := host.SlotSource(long(pc + 1))
			if !ok {
				return bad(pc, long(pc+1))
			}
			target = s
			jump = true

		case host.JMPT:
			target = t
			jump = true

		case host.JSR:
			ret := word(pc + 1)
			s, ok := host.SlotSource(long(pc + 3))
			if !ok {
				return bad(pc, long(pc+3))
			}
			nes.push(uint8(ret >> 8))
			nes.push(uint8(ret))
			target = s
			jump = true

		case host.RTS:
			lo := nes.pull()
			hi := nes.pull()
			target = (uint16(hi)<<8 | uint16(lo)) + 1
			jump = true

		case host.RTI:
			mc.Status.FromValue(nes.pull())
			mc.Status.Break = false
			lo := nes.pull()
			hi := nes.pull()
			target = uint16(hi)<<8 | uint16(lo)
			if nes.interruptible() {
				return target, exitInterrupt
			}
			jump = true

		case host.BRK:
			ret := word(pc + 1)
			nes.push(uint8(ret >> 8))
			nes.push(uint8(ret))
			nes.push(mc.Status.Value() | registers.BreakBit)
			mc.Status.InterruptDisable = true
			target = nes.read16(memorymap.IRQVector)
			jump = true

		case host.GO:
			target = word(pc + 1)
			jump = true

		default:
			nes.err = curated.Errorf(UnknownHostOpcode, uint8(op), pc)
			return ctx.PC, exitError
		}

		if !jump {
			continue // for loop
		}

		// chain directly to the next unit if there is one and if there
		// are cycles remaining
		if ctx.Cycles() <= 0 {
			return target, exitDispatch
		}
		s := ctx.slot(target)
		if s == 0 {
			return target, exitDispatch
		}
		pc = int(s - 1)
		ctx.Cursor = pc
		nes.stats.Chains++
	}
}
