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

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/preferences"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
)

// Sentinel error patterns.
const (
	CannotLoad = "load: %s: %v"
)

// compileRules parses the rules files, or the built-in rules if there are no
// files, and compiles them with the pool capacities in the preferences.
func compileRules(pr *preferences.Preferences, paths ...string) (*dictionary.Blob, dictionary.CompilerStats, error) {
	var patterns []rules.Pattern
	var err error

	if len(paths) == 0 {
		patterns, err = rules.Default()
	} else {
		patterns, err = rules.ParseFiles(paths...)
	}
	if err != nil {
		return nil, dictionary.CompilerStats{}, err
	}

	c := dictionary.NewCompiler(pr.MaxBlocks.Get().(int), pr.MaxData.Get().(int))
	if err := c.AddAll(patterns); err != nil {
		return nil, c.Stats(), err
	}

	blob, err := c.Compile()
	if err != nil {
		return nil, c.Stats(), err
	}

	return blob, c.Stats(), nil
}

// readDictionary loads a dictionary previously written by the COMPILE mode.
func readDictionary(path string) (*dictionary.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(CannotLoad, path, err)
	}
	d, err := dictionary.Load(data)
	if err != nil {
		return nil, curated.Errorf(CannotLoad, path, err)
	}
	return d, nil
}

// loadCartridge creates a cartridge from the file. Files with an iNES header
// are parsed as such and the chrPath argument is ignored. Otherwise the file
// is treated as raw PRG data and CHR data is optionally read from chrPath.
//
// A mapper value of zero or more overrides the mapper found in the iNES
// header.
func loadCartridge(path string, chrPath string, mapper int) (*cartridge.Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(CannotLoad, path, err)
	}

	var cart *cartridge.Cartridge

	if cartridge.IsINES(data) {
		cart, err = cartridge.ParseINES(data)
		if err != nil {
			return nil, curated.Errorf(CannotLoad, path, err)
		}
	} else {
		var chr []uint8
		if chrPath != "" {
			chr, err = os.ReadFile(chrPath)
			if err != nil {
				return nil, curated.Errorf(CannotLoad, chrPath, err)
			}
		}

		cart, err = cartridge.NewCartridge(data, chr)
		if err != nil {
			return nil, curated.Errorf(CannotLoad, path, err)
		}
	}

	if mapper >= 0 {
		cart.MapperID = mapper
	}

	return cart, nil
}
