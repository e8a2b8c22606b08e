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
package rules

import (
	"fmt"
	"strings"
)

// MaxLength is the maximum number of source bytes a pattern can consume.
const MaxLength = 256

// MaxTemplate is the maximum length of a template.
const MaxTemplate = 255

// Byte is a single position in the source sequence of a pattern. A mask of
// zero matches any byte.
type Byte struct {
	Value uint8
	Mask  uint8
}

// Matches returns true if the source byte is accepted at this position.
func (b Byte) Matches(v uint8) bool {
	return v&b.Mask == b.Value
}

func (b Byte) String() string {
	switch b.Mask {
	case 0x00:
		return ".."
	case 0xff:
		return fmt.Sprintf("%02X", b.Value)
	}
	return fmt.Sprintf("%02X&%02X", b.Value, b.Mask)
}

// Kind of relocation directive.
type Kind uint8

// List of valid Kind values. The zero value is used to terminate the list
// of directives in a compiled record and is not a valid Kind.
const (
	Lit Kind = iota + 1
	Word
	Rel
	Var
	Tbl
	PC
	Stop
	Trap
)

var kindNames = map[Kind]string{
	Lit:  "lit",
	Word: "word",
	Rel:  "rel",
	Var:  "var",
	Tbl:  "tbl",
	PC:   "pc",
	Stop: "stop",
	Trap: "trap",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Width is the number of template bytes patched by the directive kind.
func (k Kind) Width() int {
	switch k {
	case Lit:
		return 1
	case Word, Rel, PC:
		return 2
	case Trap:
		return 3
	case Var, Tbl:
		return 4
	}
	return 0
}

// Directive is a single relocation directive.
type Directive struct {
	Kind    Kind
	Offset  uint8
	Operand uint8
}

func (d Directive) String() string {
	switch d.Kind {
	case Stop:
		return "stop"
	case Trap:
		return fmt.Sprintf("trap %d", d.Offset)
	}
	return fmt.Sprintf("%s %d %d", d.Kind, d.Offset, d.Operand)
}

// Pattern is a single rule of the pattern language.
type Pattern struct {
	Match      []Byte
	Length     int
	Template   []byte
	Directives []Directive

	// where the pattern was defined
	File string
	Line int
}

// Stop returns true if the pattern ends a translation unit.
func (p Pattern) Stop() bool {
	for _, d := range p.Directives {
		if d.Kind == Stop {
			return true
		}
	}
	return false
}

// Matches returns true if the sequence of source bytes is accepted by the
// pattern. The sequence must be at least as long as the match key.
func (p Pattern) Matches(src []byte) bool {
	if len(src) < len(p.Match) {
		return false
	}
	for i, b := range p.Match {
		if !b.Matches(src[i]) {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	s := strings.Builder{}
	for _, b := range p.Match {
		s.WriteString(b.String())
		s.WriteRune(' ')
	}
	fmt.Fprintf(&s, "/%d =", p.Length)
	for _, b := range p.Template {
		fmt.Fprintf(&s, " %02X", b)
	}
	for i, d := range p.Directives {
		if i == 0 {
			s.WriteString(" ; ")
		} else {
			s.WriteString(", ")
		}
		s.WriteString(d.String())
	}
	return s.String()
}
