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
package scripthook_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/scripthook"
	"github.com/jetsetilly/gophernes/test"
)

type memory []uint8

func (m memory) Peek(addr uint16) uint8 {
	return m[int(addr)%len(m)]
}

const latch = `
latched = 0

function access(addr, value, write)
	if write then
		latched = value
		log(string.format("latch %04x %02x", addr, value))
		return 0
	end
	if addr == 0x4021 then
		return peek(0x0001)
	end
	return latched
end

frames = 0
function frame(n)
	frames = n
end
`

func TestAccess(t *testing.T) {
	logger.Clear()

	s, err := scripthook.NewScript("latch", strings.NewReader(latch), memory{0x10, 0x20, 0x30})
	test.ExpectedSuccess(t, err)
	defer s.Close()

	test.Equate(t, s.Access(0x4020, 0, false), uint8(0))
	s.Access(0x4020, 0x99, true)
	test.Equate(t, s.Access(0x4020, 0, false), uint8(0x99))
	test.Equate(t, s.Access(0x4021, 0, false), uint8(0x20))
	test.Equate(t, s.Calls(), 4)
	test.ExpectedSuccess(t, s.Err())

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Contains("script: latch 4020 99"))

	s.EndFrame()
	s.EndFrame()
	test.Equate(t, s.L.GetGlobal("frames").String(), "2")
}

func TestMissingAccess(t *testing.T) {
	_, err := scripthook.NewScript("empty", strings.NewReader("x = 1"), nil)
	test.ExpectedSuccess(t, curated.Is(err, scripthook.MissingAccess))
}

func TestSyntaxError(t *testing.T) {
	_, err := scripthook.NewScript("broken", strings.NewReader("function access("), nil)
	test.ExpectedSuccess(t, curated.Is(err, scripthook.ScriptError))
}

func TestRuntimeError(t *testing.T) {
	const src = `
function access(addr, value, write)
	error("bad register")
end
`
	s, err := scripthook.NewScript("failing", strings.NewReader(src), nil)
	test.ExpectedSuccess(t, err)
	defer s.Close()

	// errors are read as open bus and the script is not called again
	test.Equate(t, s.Access(0x5000, 0, false), uint8(0xff))
	test.Equate(t, s.Access(0x5000, 0, false), uint8(0xff))
	test.Equate(t, s.Calls(), 1)
	test.ExpectedSuccess(t, curated.Is(s.Err(), scripthook.ScriptError))
}

func TestNonNumericReturn(t *testing.T) {
	const src = `
function access(addr, value, write)
	return "hello"
end
`
	s, err := scripthook.NewScript("string", strings.NewReader(src), nil)
	test.ExpectedSuccess(t, err)
	defer s.Close()

	test.Equate(t, s.Access(0x4020, 0, false), uint8(0xff))
	test.ExpectedSuccess(t, s.Err())
}

func TestPeekWithoutMemory(t *testing.T) {
	const src = `
function access(addr, value, write)
	return peek(addr)
end
`
	s, err := scripthook.NewScript("nomem", strings.NewReader(src), nil)
	test.ExpectedSuccess(t, err)
	defer s.Close()

	test.Equate(t, s.Access(0x4020, 0, false), uint8(0xff))
}
