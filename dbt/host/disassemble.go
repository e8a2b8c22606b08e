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

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/curated"
)

// Sentinel error patterns.
const (
	UnknownOpcode   = "host: unknown opcode (%#02x) at offset %d"
	TruncatedStream = "host: truncated instruction (%v) at offset %d"
)

// Instruction is a single decoded host instruction.
type Instruction struct {
	Offset   int
	Opcode   Opcode
	Operands []byte
}

// Word returns the 16 bit operand beginning at operand index i.
func (ins Instruction) Word(i int) uint16 {
	return binary.LittleEndian.Uint16(ins.Operands[i:])
}

// Long returns the 32 bit operand beginning at operand index i.
func (ins Instruction) Long(i int) uint32 {
	return binary.LittleEndian.Uint32(ins.Operands[i:])
}

func (ins Instruction) String() string {
	var s string

	switch ins.Opcode {
	case NOP, LD, ST, ORA, AND, EOR, ADC, SBC, BIT,
		ASL, LSR, ROL, ROR, INC, DEC, PUSH, PULL, GETP, PUTP, JMPT, RTS, RTI:
		s = ""
	case TRAP, GO, BRK:
		s = fmt.Sprintf("$%04x", ins.Word(0))
	case CYC:
		s = fmt.Sprintf("%s, %d", hostAddress(ins.Long(0)), ins.Operands[4])
	case SKIP:
		s = hostAddress(ins.Long(0))
	case POLL:
		s = fmt.Sprintf("%s, $%04x", hostAddress(ins.Long(0)), ins.Word(4))
	case EAZ, EAIX, EAIY:
		s = fmt.Sprintf("$%02x", ins.Operands[0])
	case EAZX:
		s = fmt.Sprintf("$%02x,X", ins.Operands[0])
	case EAZY:
		s = fmt.Sprintf("$%02x,Y", ins.Operands[0])
	case EAA, EAI:
		s = fmt.Sprintf("$%04x", ins.Word(0))
	case EAAX:
		s = fmt.Sprintf("$%04x,X", ins.Word(0))
	case EAAY:
		s = fmt.Sprintf("$%04x,Y", ins.Word(0))
	case IMM, SETF, CLRF:
		s = fmt.Sprintf("#$%02x", ins.Operands[0])
	case GET, PUT, CMP:
		s = Register(ins.Operands[0]).String()
	case BR:
		s = fmt.Sprintf("%s, $%04x", condition(ins.Operands[0]), ins.Word(1))
	case JMP:
		s = hostAddress(ins.Long(0))
	case JSR:
		s = fmt.Sprintf("$%04x, %s", ins.Word(0), hostAddress(ins.Long(2)))
	}

	if s == "" {
		return ins.Opcode.String()
	}
	return fmt.Sprintf("%-4s %s", ins.Opcode, s)
}

// hostAddress names a host address if it is a variable or a dispatch slot.
func hostAddress(addr uint32) string {
	for v := range variableNames {
		if VariableAddress(v) == addr {
			return v.String()
		}
	}
	if src, ok := SlotSource(addr); ok {
		return fmt.Sprintf("[$%04x]", src)
	}
	return fmt.Sprintf("%#08x", addr)
}

// condition names the 6502 branch opcode used as the condition of a BR
// instruction.
func condition(c uint8) string {
	flag := "NVCZ"[c>>6]
	if c&0x20 == 0x20 {
		return fmt.Sprintf("%c=1", flag)
	}
	return fmt.Sprintf("%c=0", flag)
}

// Decode a stream of host instructions.
func Decode(code []byte) ([]Instruction, error) {
	var d []Instruction

	i := 0
	for i < len(code) {
		op := Opcode(code[i])
		l := Length(op)
		if l == 0 {
			return d, curated.Errorf(UnknownOpcode, code[i], i)
		}
		if i+l > len(code) {
			return d, curated.Errorf(TruncatedStream, op, i)
		}
		d = append(d, Instruction{
			Offset:   i,
			Opcode:   op,
			Operands: code[i+1 : i+l],
		})
		i += l
	}

	return d, nil
}

// Disassemble writes the decoded host instructions to the io.Writer, one
// instruction per line. Runs of NOP instructions are collapsed into one line.
func Disassemble(w io.Writer, code []byte) error {
	d, err := Decode(code)

	nops := 0
	flush := func() {
		if nops > 0 {
			fmt.Fprintf(w, "      NOP  x%d\n", nops)
			nops = 0
		}
	}

	for _, ins := range d {
		if ins.Opcode == NOP {
			nops++
			continue
		}
		flush()
		fmt.Fprintf(w, "%04x  %s\n", ins.Offset, ins)
	}
	flush()

	return err
}
