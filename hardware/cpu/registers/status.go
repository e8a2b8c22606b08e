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
package registers

import (
	"strings"
)

// Bit masks for the flags of the status register when it is in uint8 form.
const (
	SignBit             uint8 = 0x80
	OverflowBit         uint8 = 0x40
	UnusedBit           uint8 = 0x20
	BreakBit            uint8 = 0x10
	DecimalModeBit      uint8 = 0x08
	InterruptDisableBit uint8 = 0x04
	ZeroBit             uint8 = 0x02
	CarryBit            uint8 = 0x01
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// SetNZ sets the sign and zero flags according to the value.
func (sr *StatusRegister) SetNZ(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Zero = v == 0
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.Break {
		v |= BreakBit
	}
	if sr.DecimalMode {
		v |= DecimalModeBit
	}
	if sr.InterruptDisable {
		v |= InterruptDisableBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= UnusedBit

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.Break = v&BreakBit == BreakBit
	sr.DecimalMode = v&DecimalModeBit == DecimalModeBit
	sr.InterruptDisable = v&InterruptDisableBit == InterruptDisableBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}

// Set or clear the flags indicated by the mask. The mask uses the same bit
// positions as Value().
func (sr *StatusRegister) Set(mask uint8, set bool) {
	v := sr.Value()
	if set {
		v |= mask
	} else {
		v &^= mask
	}
	sr.FromValue(v)
}
