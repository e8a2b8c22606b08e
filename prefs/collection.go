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
package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Collection groups preference values by key.
type Collection struct {
	entries map[string]pref
}

// NewCollection is the preferred method of initialisation for the Collection type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the collection.
func (c *Collection) Add(key string, p pref) error {
	if _, ok := c.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	c.entries[key] = p
	return nil
}

// Set the value for the named key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[key]
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Reset all values in the collection.
func (c *Collection) Reset() error {
	for _, p := range c.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCommandLine sets every value in the collection that has an entry in
// the current command line group. Consumed entries are removed from the
// group.
func (c *Collection) ApplyCommandLine() error {
	for key, p := range c.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", key, err)
			}
		}
	}
	return nil
}

func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k]))
	}
	return s.String()
}
