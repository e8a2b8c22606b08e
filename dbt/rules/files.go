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
	_ "embed"
	"os"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
	"golang.org/x/sync/errgroup"
)

// Sentinel error patterns.
const (
	CannotOpen = "rules: cannot open (%s): %v"
)

// ParseFiles parses each of the named rules files. Files are parsed
// concurrently but the patterns are returned in the order of the arguments
// and then in the order they appear in each file.
func ParseFiles(paths ...string) ([]Pattern, error) {
	results := make([][]Pattern, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return curated.Errorf(CannotOpen, path, err)
			}
			defer f.Close()

			results[i], err = Parse(path, f)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var patterns []Pattern
	for _, r := range results {
		patterns = append(patterns, r...)
	}

	return patterns, nil
}

//go:embed nes6502.rules
var nes6502 string

// DefaultName is the name used for the embedded rules in patterns and errors.
const DefaultName = "nes6502.rules"

// Default returns the patterns of the embedded NES 6502 rule set.
func Default() ([]Pattern, error) {
	return Parse(DefaultName, strings.NewReader(nes6502))
}
