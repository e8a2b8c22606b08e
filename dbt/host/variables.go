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
package host

import "strings"

// Variable identifies one of the runtime variables in the host data space.
type Variable uint8

// List of valid Variable values. The zero value is not a valid variable so
// that a zero operand can never be mistaken for one.
const (
	Cycles Variable = iota + 1
	Pending
	StackPointer
)

// Layout of the host data space.
const (
	// the host address of the first byte of the data space
	DataBase uint32 = 0x00100000

	// offsets of the runtime variables in the data space. the cycles
	// countdown is a little-endian int32
	CyclesOffset       = 0
	PendingOffset      = 4
	StackPointerOffset = 5

	// the dispatch table begins after the variables and has one four byte
	// entry for every source address
	TableOffset  = 16
	TableEntries = 0x10000
	SlotWidth    = 4

	// the total size of the data space
	DataSize = TableOffset + TableEntries*SlotWidth
)

// Bits in the Pending variable.
const (
	PendingNMI uint8 = 0x01
	PendingIRQ uint8 = 0x02
)

var variableNames = map[Variable]string{
	Cycles:       "cycles",
	Pending:      "pending",
	StackPointer: "sp",
}

var variableOffsets = map[Variable]int{
	Cycles:       CyclesOffset,
	Pending:      PendingOffset,
	StackPointer: StackPointerOffset,
}

func (v Variable) String() string {
	if s, ok := variableNames[v]; ok {
		return s
	}
	return "unknown"
}

// VariableByName returns the Variable with the name. Comparison is case
// insensitive.
func VariableByName(name string) (Variable, bool) {
	name = strings.ToLower(name)
	for v, n := range variableNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}

// VariableOffset returns the offset of the variable in the data space.
func VariableOffset(v Variable) (int, bool) {
	o, ok := variableOffsets[v]
	return o, ok
}

// VariableAddress returns the host address of the variable.
func VariableAddress(v Variable) uint32 {
	return DataBase + uint32(variableOffsets[v])
}

// SlotAddress returns the host address of the dispatch table slot for the
// source address.
func SlotAddress(addr uint16) uint32 {
	return DataBase + TableOffset + uint32(addr)*SlotWidth
}

// SlotSource is the inverse of SlotAddress(). Returns false if the host
// address is not the address of a dispatch table slot.
func SlotSource(slot uint32) (uint16, bool) {
	if slot < DataBase+TableOffset || slot >= DataBase+DataSize {
		return 0, false
	}
	o := slot - DataBase - TableOffset
	if o%SlotWidth != 0 {
		return 0, false
	}
	return uint16(o / SlotWidth), true
}

// DataOffset converts a host address to an offset into the data space.
// Returns false if the address is outside the data space or if there are
// not enough bytes in the data space for an access of the given width.
func DataOffset(addr uint32, width int) (int, bool) {
	if addr < DataBase || addr+uint32(width) > DataBase+DataSize {
		return 0, false
	}
	return int(addr - DataBase), true
}
