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
// Package preferences collates the preference values used by the dbt
// packages and by the NES that hosts them.
package preferences

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/prefs"
)

// Default values.
const (
	DefaultArena = 4 * 1024 * 1024
)

// Sentinel error patterns.
const (
	BadValue = "preferences: %s must be positive (%d)"
)

// Preferences defines and collates the preference values used by the
// translator and by the dictionary compiler.
type Preferences struct {
	c *prefs.Collection

	// skip unknown opcodes instead of emitting a trap
	IgnoreUnknown prefs.Bool

	// capacity of the code arena in bytes
	Arena prefs.Int

	// capacities of the dictionary compiler pools
	MaxBlocks prefs.Int
	MaxData   prefs.Int
}

func (p *Preferences) String() string {
	return p.c.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values found in the command line prefs stack are
// applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		c: prefs.NewCollection(),
	}

	positive := func(key string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(BadValue, key, v.(int))
			}
			return nil
		}
	}

	p.Arena.SetHookPre(positive("dbt.arena"))
	p.MaxBlocks.SetHookPre(positive("dbt.maxblocks"))
	p.MaxData.SetHookPre(positive("dbt.maxdata"))

	if err := p.c.Add("dbt.ignoreunknown", &p.IgnoreUnknown); err != nil {
		return nil, err
	}
	if err := p.c.Add("dbt.arena", &p.Arena); err != nil {
		return nil, err
	}
	if err := p.c.Add("dbt.maxblocks", &p.MaxBlocks); err != nil {
		return nil, err
	}
	if err := p.c.Add("dbt.maxdata", &p.MaxData); err != nil {
		return nil, err
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if err := p.c.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.IgnoreUnknown.Set(false); err != nil {
		return err
	}
	if err := p.Arena.Set(DefaultArena); err != nil {
		return err
	}
	if err := p.MaxBlocks.Set(dictionary.DefaultMaxBlocks); err != nil {
		return err
	}
	return p.MaxData.Set(dictionary.DefaultMaxData)
}

// Set the preference with the key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.c.Set(key, v)
}
