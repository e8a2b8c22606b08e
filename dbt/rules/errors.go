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

// ParseError records the position of a syntax error in a rules file.
type ParseError struct {
	File   string
	Line   int
	Column int

	// the text of the offending line
	Text string

	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rules: %s:%d:%d: %s", e.File, e.Line, e.Column, e.Reason)
}

// Diagnostic returns the offending line and, on the following line, a caret
// pointing at the failing column. Tabs in the offending line are reproduced
// so that the caret is aligned however the output is displayed.
func (e *ParseError) Diagnostic() string {
	s := strings.Builder{}
	s.WriteString(e.Text)
	s.WriteRune('\n')

	for i := 0; i < e.Column-1 && i < len(e.Text); i++ {
		if e.Text[i] == '\t' {
			s.WriteRune('\t')
		} else {
			s.WriteRune(' ')
		}
	}
	s.WriteRune('^')

	return s.String()
}
