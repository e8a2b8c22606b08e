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
// Package rules parses the pattern language used to describe the
// translation of source (6502) instructions into host instructions. Each
// line of a rules file describes one Pattern:
//
//	<source> /<length> = <template> [; <directive> {, <directive>}]
//
// Source tokens are two digit hex values. A token can be masked with an
// ampersand, in which case a source byte matches if the byte ANDed with the
// mask equals the value. A token of two dots matches any byte. The declared
// length is decimal and is the number of source bytes the pattern consumes.
// It can be longer than the number of source tokens, in which case the
// remaining bytes are operands that take no part in matching.
//
// Template tokens are groups of hex digits. Each pair of digits is one byte
// of host code. Grouping is for readability only.
//
// Directives patch the template after it has been copied to the code arena:
//
//	lit O N     template[O] = source[N]
//	word O N    template[O:O+2] = source word at N
//	rel O N     template[O:O+2] = origin + length + signed source[N]
//	var O name  template[O:O+4] = host address of runtime variable
//	tbl O N     template[O:O+4] = host address of dispatch slot for word at N
//	pc O N      template[O:O+2] = origin + N
//	trap O      template[O:O+3] = TRAP origin
//	stop        the pattern ends the translation unit
//
// O and N can be decimal or 0x prefixed hex. Everything following a hash
// character is a comment. For example, the following rule translates the
// immediate form of LDA:
//
//	A9 /2 = 02 00000000 02  20 00  24 00 ; var 1 cycles, lit 7 1
//
// Errors found while parsing are returned as a *ParseError, which records
// the position of the error and can render a diagnostic pointing at the
// failing column.
package rules
