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
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/preferences"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/test"
)

// loopPRG returns 16KB of PRG data that loops forever at $8000.
func loopPRG() []uint8 {
	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{0x4c, 0x00, 0x80})
	prg[0x3ffc] = 0x00
	prg[0x3ffd] = 0x80
	return prg
}

func writeFile(t *testing.T, name string, data []uint8) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("%v", err)
	}
	return path
}

func TestCompileAndRead(t *testing.T) {
	pr, err := preferences.NewPreferences()
	test.ExpectedSuccess(t, err)

	blob, st, err := compileRules(pr)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, st.Patterns > 0)

	path := filepath.Join(t.TempDir(), "nes.dict")
	f, err := os.Create(path)
	test.ExpectedSuccess(t, err)
	_, err = blob.WriteTo(f)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, f.Close())

	d, err := readDictionary(path)
	test.ExpectedSuccess(t, err)

	b, err := dictionary.Load(blob.Bytes())
	test.ExpectedSuccess(t, err)
	test.Equate(t, d.Stats().Records, b.Stats().Records)

	_, err = readDictionary(filepath.Join(t.TempDir(), "missing.dict"))
	test.ExpectedSuccess(t, curated.Is(err, CannotLoad))
}

func TestSmallPools(t *testing.T) {
	pr, err := preferences.NewPreferences()
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, pr.MaxBlocks.Set(1))

	_, _, err = compileRules(pr)
	test.ExpectedSuccess(t, curated.Has(err, dictionary.BlockPoolExhausted))
}

func TestLoadRawCartridge(t *testing.T) {
	path := writeFile(t, "loop.prg", loopPRG())
	chr := writeFile(t, "loop.chr", make([]uint8, 0x2000))

	cart, err := loadCartridge(path, chr, -1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.MapperID, 0)
	test.Equate(t, len(cart.CHR), 0x2000)

	cart, err = loadCartridge(path, "", 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.MapperID, 2)
	test.ExpectedSuccess(t, cart.HasCHRRAM())

	// PRG data must be a multiple of 8KB
	bad := writeFile(t, "bad.prg", make([]uint8, 100))
	_, err = loadCartridge(bad, "", -1)
	test.ExpectedSuccess(t, curated.Has(err, cartridge.InvalidPRG))
}

func TestLoadINES(t *testing.T) {
	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0x21, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, loopPRG()...)
	data = append(data, make([]uint8, 0x2000)...)
	path := writeFile(t, "loop.nes", data)

	cart, err := loadCartridge(path, "ignored.chr", -1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.MapperID, 2)

	cart, err = loadCartridge(path, "", 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.MapperID, 0)
}

func TestRunMode(t *testing.T) {
	path := writeFile(t, "loop.prg", loopPRG())

	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-frames", "3", path})

	test.ExpectedSuccess(t, run(md))
	test.ExpectedSuccess(t, tw.Contains("PRG 16KB"))
	test.ExpectedSuccess(t, tw.Contains("frames 3"))
}

func TestRunModeArguments(t *testing.T) {
	tw := &test.Writer{}
	md := &modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-frames", "1"})
	test.ExpectedFailure(t, run(md))

	md.NewArgs([]string{"-profile", "disk", "x.prg"})
	test.ExpectedFailure(t, run(md))
}
