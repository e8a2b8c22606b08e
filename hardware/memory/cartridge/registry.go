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
package cartridge

import (
	"sort"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// UnsupportedMapper is returned by Registry.Create() for unknown mapper
// numbers.
const UnsupportedMapper = "cartridge: mapper %d is not supported"

// the static list of supported mappers
var factories = []struct {
	id     int
	create func() mapper.Mapper
}{
	{id: 0, create: newNROM},
	{id: 1, create: newMMC1},
	{id: 2, create: newUxROM},
	{id: 3, create: newCNROM},
	{id: 4, create: newMMC3},
	{id: 7, create: newAxROM},
}

// Registry maps a mapper number to a function that creates a new instance
// of that mapper.
type Registry struct {
	factories map[int]func() mapper.Mapper
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[int]func() mapper.Mapper),
	}
	for _, f := range factories {
		r.factories[f.id] = f.create
	}
	return r
}

// Create a new instance of the numbered mapper.
func (r *Registry) Create(id int) (mapper.Mapper, error) {
	if f, ok := r.factories[id]; ok {
		return f(), nil
	}
	return nil, curated.Errorf(UnsupportedMapper, id)
}

// Supported returns the list of supported mapper numbers in order.
func (r *Registry) Supported() []int {
	ids := make([]int, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
