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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/dbt/host"
)

// Parse the rules read from the io.Reader. The name is used to identify the
// source of the rules in patterns and in errors.
func Parse(name string, r io.Reader) ([]Pattern, error) {
	var patterns []Pattern

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		lp := lineParser{
			file: name,
			line: line,
			text: scanner.Text(),
		}

		p, ok, err := lp.parse()
		if err != nil {
			return nil, err
		}
		if ok {
			patterns = append(patterns, p)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{
			File:   name,
			Line:   line + 1,
			Column: 1,
			Reason: err.Error(),
		}
	}

	return patterns, nil
}

// lineParser parses a single line of a rules file.
type lineParser struct {
	file string
	line int
	text string

	// the text with any comment removed
	body string

	// index into body of the next byte to be parsed
	pos int
}

func (lp *lineParser) errorAt(pos int, reason string) *ParseError {
	return &ParseError{
		File:   lp.file,
		Line:   lp.line,
		Column: pos + 1,
		Text:   lp.text,
		Reason: reason,
	}
}

func (lp *lineParser) eol() bool {
	return lp.pos >= len(lp.body)
}

func (lp *lineParser) peek() byte {
	return lp.body[lp.pos]
}

func (lp *lineParser) skipSpace() {
	for !lp.eol() && (lp.peek() == ' ' || lp.peek() == '\t') {
		lp.pos++
	}
}

// word returns the next token and its position. a token ends at whitespace,
// at the end of the line or at one of the punctuation characters of the
// language.
func (lp *lineParser) word() (string, int) {
	lp.skipSpace()
	start := lp.pos
	for !lp.eol() && !strings.ContainsRune(" \t/=;,", rune(lp.peek())) {
		lp.pos++
	}
	return lp.body[start:lp.pos], start
}

// parse returns false if the line contains no rule.
func (lp *lineParser) parse() (Pattern, bool, error) {
	lp.body = lp.text
	if i := strings.IndexRune(lp.body, '#'); i >= 0 {
		lp.body = lp.body[:i]
	}
	if strings.TrimSpace(lp.body) == "" {
		return Pattern{}, false, nil
	}

	p := Pattern{
		File: lp.file,
		Line: lp.line,
	}

	if err := lp.source(&p); err != nil {
		return p, false, err
	}
	if err := lp.length(&p); err != nil {
		return p, false, err
	}
	if err := lp.template(&p); err != nil {
		return p, false, err
	}
	if err := lp.directives(&p); err != nil {
		return p, false, err
	}

	return p, true, nil
}

func (lp *lineParser) source(p *Pattern) error {
	for {
		lp.skipSpace()
		if lp.eol() || lp.peek() == '=' || lp.peek() == ';' || lp.peek() == ',' {
			return lp.errorAt(lp.pos, "missing / terminator")
		}

		if lp.peek() == '/' {
			if len(p.Match) == 0 {
				return lp.errorAt(lp.pos, "no source bytes")
			}
			lp.pos++
			return nil
		}

		tok, col := lp.word()
		b, err := lp.sourceToken(tok, col)
		if err != nil {
			return err
		}
		p.Match = append(p.Match, b)
	}
}

func (lp *lineParser) sourceToken(tok string, col int) (Byte, error) {
	if tok == ".." {
		return Byte{}, nil
	}

	val, mask, masked := strings.Cut(tok, "&")

	v, err := lp.hexByte(val, col)
	if err != nil {
		return Byte{}, err
	}

	if !masked {
		return Byte{Value: v, Mask: 0xff}, nil
	}

	m, err := lp.hexByte(mask, col+len(val)+1)
	if err != nil {
		return Byte{}, err
	}

	// a mask can only narrow the match. a value with bits outside the mask
	// could never match anything
	if v&^m != 0 {
		return Byte{}, lp.errorAt(col, "value has bits outside mask ("+tok+")")
	}

	return Byte{Value: v, Mask: m}, nil
}

// hexByte parses exactly two hex digits.
func (lp *lineParser) hexByte(s string, col int) (uint8, error) {
	if i := nonHex(s); i >= 0 {
		return 0, lp.errorAt(col+i, "non-hex digit")
	}
	if len(s) != 2 {
		return 0, lp.errorAt(col, "source byte must be two hex digits")
	}
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v), nil
}

// nonHex returns the index of the first non-hex digit in the string or -1 if
// all digits are hex.
func nonHex(s string) int {
	for i, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return i
		}
	}
	return -1
}

func (lp *lineParser) length(p *Pattern) error {
	lp.skipSpace()

	start := lp.pos
	for !lp.eol() && lp.peek() >= '0' && lp.peek() <= '9' {
		lp.pos++
	}
	if start == lp.pos {
		return lp.errorAt(start, "missing source length")
	}

	n, err := strconv.Atoi(lp.body[start:lp.pos])
	if err != nil || n < 1 || n > MaxLength {
		return lp.errorAt(start, "source length out of range")
	}
	if n < len(p.Match) {
		return lp.errorAt(start, "source length is shorter than source sequence")
	}
	p.Length = n

	lp.skipSpace()
	if lp.eol() || lp.peek() != '=' {
		return lp.errorAt(lp.pos, "missing = terminator")
	}
	lp.pos++

	return nil
}

func (lp *lineParser) template(p *Pattern) error {
	for {
		lp.skipSpace()
		if lp.eol() || lp.peek() == ';' {
			break // for loop
		}

		tok, col := lp.word()
		if tok == "" {
			return lp.errorAt(lp.pos, "unexpected character in template")
		}
		if i := nonHex(tok); i >= 0 {
			return lp.errorAt(col+i, "non-hex digit")
		}
		if len(tok)%2 != 0 {
			return lp.errorAt(col+len(tok)-1, "odd number of hex digits")
		}
		for i := 0; i < len(tok); i += 2 {
			v, _ := strconv.ParseUint(tok[i:i+2], 16, 8)
			p.Template = append(p.Template, uint8(v))
		}
		if len(p.Template) > MaxTemplate {
			return lp.errorAt(col, "template is too long")
		}
	}

	return nil
}

func (lp *lineParser) directives(p *Pattern) error {
	if lp.eol() {
		return nil
	}

	// skip semicolon
	lp.pos++

	for {
		d, err := lp.directive(p)
		if err != nil {
			return err
		}
		p.Directives = append(p.Directives, d)

		lp.skipSpace()
		if lp.eol() {
			return nil
		}
		if lp.peek() != ',' {
			return lp.errorAt(lp.pos, "expected comma between directives")
		}
		lp.pos++
	}
}

func (lp *lineParser) directive(p *Pattern) (Directive, error) {
	name, col := lp.word()
	if name == "" {
		return Directive{}, lp.errorAt(col, "missing directive")
	}

	var d Directive
	for k, n := range kindNames {
		if n == strings.ToLower(name) {
			d.Kind = k
		}
	}
	if d.Kind == 0 {
		return d, lp.errorAt(col, "unknown directive ("+name+")")
	}

	if d.Kind == Stop {
		return d, nil
	}

	off, _, err := lp.number()
	if err != nil {
		return d, err
	}
	d.Offset = off

	if int(d.Offset)+d.Kind.Width() > len(p.Template) {
		return d, lp.errorAt(col, "directive does not fit template")
	}

	switch d.Kind {
	case Trap:
		return d, nil

	case Var:
		tok, vcol := lp.word()
		v, ok := host.VariableByName(tok)
		if !ok {
			return d, lp.errorAt(vcol, "unknown variable ("+tok+")")
		}
		d.Operand = uint8(v)
		return d, nil
	}

	opr, operandCol, err := lp.number()
	if err != nil {
		return d, err
	}
	d.Operand = opr

	// the number of source bytes read by the directive
	var read int
	switch d.Kind {
	case Lit, Rel:
		read = 1
	case Word, Tbl:
		read = 2
	}
	if int(d.Operand)+read > p.Length {
		return d, lp.errorAt(operandCol, "operand is outside source length")
	}

	return d, nil
}

// number parses a decimal or 0x prefixed hex value in the range of a uint8.
func (lp *lineParser) number() (uint8, int, error) {
	tok, col := lp.word()
	if tok == "" {
		return 0, col, lp.errorAt(col, "missing number")
	}
	v, err := strconv.ParseUint(tok, 0, 8)
	if err != nil {
		return 0, col, lp.errorAt(col, "bad number ("+tok+")")
	}
	return uint8(v), col, nil
}
