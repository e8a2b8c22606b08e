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
package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"foo", "bar"})

	p, err := md.Parse()
	test.Equate(t, err, nil)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 2)
	test.Equate(t, md.GetArg(0), "foo")
	test.Equate(t, md.GetArg(1), "bar")
	test.Equate(t, md.GetArg(2), "")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"nes6502.rules"})
	md.AddSubModes("COMPILE", "DUMP", "RUN")

	_, err := md.Parse()
	test.Equate(t, err, nil)
	test.Equate(t, md.Mode(), "COMPILE")
	test.Equate(t, md.GetArg(0), "nes6502.rules")
}

func TestSubModeWithFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-v", "run", "-frames", "10", "game.prg"})
	md.AddSubModes("COMPILE", "DUMP", "RUN")
	verbose := md.AddBool("v", false, "verbose")

	_, err := md.Parse()
	test.Equate(t, err, nil)
	test.ExpectedSuccess(t, *verbose)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	frames := md.AddInt("frames", 1, "number of frames")
	_, err = md.Parse()
	test.Equate(t, err, nil)
	test.Equate(t, *frames, 10)
	test.Equate(t, md.Path(), "RUN")
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "game.prg")
}

func TestHelp(t *testing.T) {
	w := &test.Writer{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("COMPILE", "RUN")
	md.AddString("o", "", "output file")
	md.AdditionalHelp("rules files are read in order")

	p, err := md.Parse()
	test.Equate(t, err, nil)
	test.Equate(t, p == modalflag.ParseHelp, true)
	test.ExpectedSuccess(t, w.Contains("available sub-modes: COMPILE, RUN"))
	test.ExpectedSuccess(t, w.Contains("default: COMPILE"))
	test.ExpectedSuccess(t, w.Contains("rules files are read in order"))
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, p == modalflag.ParseError, true)
}
