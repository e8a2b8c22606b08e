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

// Opcode is the first byte of every host instruction.
type Opcode uint8

// List of valid host opcodes.
const (
	NOP  Opcode = 0x00
	TRAP Opcode = 0x01
	CYC  Opcode = 0x02
	SKIP Opcode = 0x03
	POLL Opcode = 0x04

	EAZ  Opcode = 0x10
	EAZX Opcode = 0x11
	EAZY Opcode = 0x12
	EAA  Opcode = 0x13
	EAAX Opcode = 0x14
	EAAY Opcode = 0x15
	EAIX Opcode = 0x16
	EAIY Opcode = 0x17
	EAI  Opcode = 0x18

	IMM Opcode = 0x20
	LD  Opcode = 0x21
	ST  Opcode = 0x22
	GET Opcode = 0x23
	PUT Opcode = 0x24

	ORA Opcode = 0x30
	AND Opcode = 0x31
	EOR Opcode = 0x32
	ADC Opcode = 0x33
	SBC Opcode = 0x34
	CMP Opcode = 0x35
	BIT Opcode = 0x36

	ASL Opcode = 0x38
	LSR Opcode = 0x39
	ROL Opcode = 0x3a
	ROR Opcode = 0x3b
	INC Opcode = 0x3c
	DEC Opcode = 0x3d

	SETF Opcode = 0x40
	CLRF Opcode = 0x41
	PUSH Opcode = 0x42
	PULL Opcode = 0x43
	GETP Opcode = 0x44
	PUTP Opcode = 0x45

	BR   Opcode = 0x50
	JMP  Opcode = 0x51
	JMPT Opcode = 0x52
	JSR  Opcode = 0x53
	RTS  Opcode = 0x54
	RTI  Opcode = 0x55
	BRK  Opcode = 0x56
	GO   Opcode = 0x57
)

// Register operand of the GET, PUT and CMP instructions.
type Register uint8

// List of valid Register values.
const (
	A Register = iota
	X
	Y
	S
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case X:
		return "X"
	case Y:
		return "Y"
	case S:
		return "S"
	}
	return "?"
}

type definition struct {
	mnemonic string
	length   int
}

var definitions = map[Opcode]definition{
	NOP:  {"NOP", 1},
	TRAP: {"TRAP", 3},
	CYC:  {"CYC", 6},
	SKIP: {"SKIP", 5},
	POLL: {"POLL", 7},
	EAZ:  {"EAZ", 2},
	EAZX: {"EAZX", 2},
	EAZY: {"EAZY", 2},
	EAA:  {"EAA", 3},
	EAAX: {"EAAX", 3},
	EAAY: {"EAAY", 3},
	EAIX: {"EAIX", 2},
	EAIY: {"EAIY", 2},
	EAI:  {"EAI", 3},
	IMM:  {"IMM", 2},
	LD:   {"LD", 1},
	ST:   {"ST", 1},
	GET:  {"GET", 2},
	PUT:  {"PUT", 2},
	ORA:  {"ORA", 1},
	AND:  {"AND", 1},
	EOR:  {"EOR", 1},
	ADC:  {"ADC", 1},
	SBC:  {"SBC", 1},
	CMP:  {"CMP", 2},
	BIT:  {"BIT", 1},
	ASL:  {"ASL", 1},
	LSR:  {"LSR", 1},
	ROL:  {"ROL", 1},
	ROR:  {"ROR", 1},
	INC:  {"INC", 1},
	DEC:  {"DEC", 1},
	SETF: {"SETF", 2},
	CLRF: {"CLRF", 2},
	PUSH: {"PUSH", 1},
	PULL: {"PULL", 1},
	GETP: {"GETP", 1},
	PUTP: {"PUTP", 1},
	BR:   {"BR", 4},
	JMP:  {"JMP", 5},
	JMPT: {"JMPT", 1},
	JSR:  {"JSR", 7},
	RTS:  {"RTS", 1},
	RTI:  {"RTI", 1},
	BRK:  {"BRK", 3},
	GO:   {"GO", 3},
}

// Length returns the number of bytes in an instruction beginning with the
// opcode. Returns zero if the opcode is not defined.
func Length(op Opcode) int {
	return definitions[op].length
}

// Valid returns true if the opcode is defined.
func Valid(op Opcode) bool {
	_, ok := definitions[op]
	return ok
}

func (op Opcode) String() string {
	if d, ok := definitions[op]; ok {
		return d.mnemonic
	}
	return "???"
}
