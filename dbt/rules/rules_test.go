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
package rules_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/test"
)

func parseOne(t *testing.T, line string) (rules.Pattern, error) {
	t.Helper()
	p, err := rules.Parse("test.rules", strings.NewReader(line))
	if err != nil {
		return rules.Pattern{}, err
	}
	if len(p) != 1 {
		t.Fatalf("expected one pattern, got %d", len(p))
	}
	return p[0], nil
}

// parseError expects the line to fail and returns the error as a *ParseError.
func parseError(t *testing.T, line string) *rules.ParseError {
	t.Helper()
	_, err := rules.Parse("test.rules", strings.NewReader(line))
	var pe *rules.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a ParseError for %q, got %v", line, err)
	}
	return pe
}

func TestParse(t *testing.T) {
	p, err := parseOne(t, "A9 /2 = 02 00000000 02  20 00  24 00 ; var 1 cycles, lit 7 1  # LDA #nn")
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(p.Match), 1)
	test.Equate(t, p.Match[0].Value, 0xa9)
	test.Equate(t, p.Match[0].Mask, 0xff)
	test.Equate(t, p.Length, 2)
	test.Equate(t, p.Template, []byte{0x02, 0, 0, 0, 0, 0x02, 0x20, 0x00, 0x24, 0x00})
	test.Equate(t, len(p.Directives), 2)
	test.Equate(t, p.Directives[0].Kind == rules.Var, true)
	test.Equate(t, p.Directives[0].Offset, 1)
	test.Equate(t, p.Directives[0].Operand, uint8(host.Cycles))
	test.Equate(t, p.Directives[1].Kind == rules.Lit, true)
	test.Equate(t, p.Directives[1].Offset, 7)
	test.Equate(t, p.Directives[1].Operand, 1)
	test.ExpectedFailure(t, p.Stop())
	test.Equate(t, p.Line, 1)
}

func TestParseMaskedAndWildcard(t *testing.T) {
	p, err := parseOne(t, "10&1F .. /2 = 00 ; stop")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p.Match[0].Value, 0x10)
	test.Equate(t, p.Match[0].Mask, 0x1f)
	test.Equate(t, p.Match[1].Mask, 0x00)
	test.ExpectedSuccess(t, p.Stop())
	test.Equate(t, p.String(), "10&1F .. /2 = 00 ; stop")

	// empty template
	p, err = parseOne(t, "EA /1 =")
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(p.Template), 0)

	// blank lines and comments are not patterns
	ps, err := rules.Parse("test.rules", strings.NewReader("\n  # comment\n\t\nEA /1 = 00\n"))
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(ps), 1)
	test.Equate(t, ps[0].Line, 4)
}

// every byte that satisfies the value and mask is accepted and every other
// byte is rejected.
func TestMaskAcceptance(t *testing.T) {
	for _, tok := range []string{"10&1F", "00&00", "80&80", "A5", ".."} {
		p, err := parseOne(t, tok+" /1 = 00")
		test.ExpectedSuccess(t, err)
		m := p.Match[0]

		for b := 0; b < 256; b++ {
			want := uint8(b)&m.Mask == m.Value
			test.Equate(t, m.Matches(uint8(b)), want)
			test.Equate(t, p.Matches([]byte{uint8(b)}), want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pe := parseError(t, "A9 = 00")
	test.Equate(t, pe.Reason, "missing / terminator")
	test.Equate(t, pe.Line, 1)

	pe = parseError(t, "A9 /2 00")
	test.Equate(t, pe.Reason, "missing = terminator")
	test.Equate(t, pe.Column, 7)

	pe = parseError(t, "A9 /2 = 0G")
	test.Equate(t, pe.Reason, "non-hex digit")
	test.Equate(t, pe.Column, 10)
	test.Equate(t, pe.Diagnostic(), "A9 /2 = 0G\n         ^")

	pe = parseError(t, "AX /2 = 00")
	test.Equate(t, pe.Reason, "non-hex digit")
	test.Equate(t, pe.Column, 2)

	pe = parseError(t, "A9 00 00 /2 = 00")
	test.Equate(t, pe.Reason, "source length is shorter than source sequence")

	pe = parseError(t, "A9 /0 = 00")
	test.Equate(t, pe.Reason, "source length out of range")
	pe = parseError(t, "A9 /257 = 00")
	test.Equate(t, pe.Reason, "source length out of range")

	pe = parseError(t, "11&0F /1 = 00")
	test.ExpectedSuccess(t, strings.HasPrefix(pe.Reason, "value has bits outside mask"))

	pe = parseError(t, "A9 /2 = 000")
	test.Equate(t, pe.Reason, "odd number of hex digits")

	pe = parseError(t, "A9 /2 = 00 ; frob 0 0")
	test.Equate(t, pe.Reason, "unknown directive (frob)")
	test.Equate(t, pe.Column, 14)

	pe = parseError(t, "A9 /2 = 00 ; var 0 nosuch")
	test.Equate(t, pe.Reason, "directive does not fit template")
	pe = parseError(t, "A9 /2 = 00000000 ; var 0 nosuch")
	test.Equate(t, pe.Reason, "unknown variable (nosuch)")

	pe = parseError(t, "A9 /2 = 0000 ; word 0 1")
	test.Equate(t, pe.Reason, "operand is outside source length")

	pe = parseError(t, "A9 /2 = 00 ; stop stop")
	test.Equate(t, pe.Reason, "expected comma between directives")

	// line numbers count blank lines and comments
	pe = parseError(t, "# comment\n\nEA /1 = 00\nA9 /2 = 0G\n")
	test.Equate(t, pe.Line, 4)
	test.ExpectedSuccess(t, strings.HasPrefix(pe.Error(), "rules: test.rules:4:10"))
}

func TestDiagnosticTabs(t *testing.T) {
	pe := parseError(t, "\tA9 /2 =\t0G")
	test.Equate(t, pe.Diagnostic(), "\tA9 /2 =\t0G\n\t       \t ^")
}

func TestDefault(t *testing.T) {
	p, err := rules.Default()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(p), 158)

	// every official opcode is covered by at least one pattern
	official := "69 65 75 6D 7D 79 61 71 29 25 35 2D 3D 39 21 31 0A 06 16 0E 1E " +
		"90 B0 F0 24 2C 30 D0 10 00 50 70 18 D8 58 B8 C9 C5 D5 CD DD D9 C1 D1 " +
		"E0 E4 EC C0 C4 CC C6 D6 CE DE CA 88 49 45 55 4D 5D 59 41 51 E6 F6 EE FE " +
		"E8 C8 4C 6C 20 A9 A5 B5 AD BD B9 A1 B1 A2 A6 B6 AE BE A0 A4 B4 AC BC " +
		"4A 46 56 4E 5E EA 09 05 15 0D 1D 19 01 11 48 08 68 28 2A 26 36 2E 3E " +
		"6A 66 76 6E 7E 40 60 E9 E5 F5 ED FD F9 E1 F1 38 F8 78 85 95 8D 9D 99 " +
		"81 91 86 96 8E 84 94 8C AA A8 BA 8A 9A 98"

	ops := strings.Fields(official)
	test.Equate(t, len(ops), 151)

	for _, op := range ops {
		var v uint8
		for i := 0; i < 2; i++ {
			v = v<<4 | uint8(strings.IndexByte("0123456789ABCDEF", op[i]))
		}
		found := false
		for _, r := range p {
			if r.Match[0].Matches(v) {
				found = true
				break // for loop
			}
		}
		if !found {
			t.Errorf("opcode %s is not covered by the default rules", op)
		}
	}
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.rules")
	b := filepath.Join(dir, "b.rules")
	test.ExpectedSuccess(t, os.WriteFile(a, []byte("EA /1 = 00\nE8 /1 = 00\n"), 0o644))
	test.ExpectedSuccess(t, os.WriteFile(b, []byte("60 /1 = 54 ; stop\n"), 0o644))

	p, err := rules.ParseFiles(b, a)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(p), 3)
	test.Equate(t, p[0].Match[0].Value, 0x60)
	test.Equate(t, p[0].File, b)
	test.Equate(t, p[1].Match[0].Value, 0xea)
	test.Equate(t, p[2].Match[0].Value, 0xe8)

	_, err = rules.ParseFiles(a, filepath.Join(dir, "missing.rules"))
	test.ExpectedFailure(t, err)
}
