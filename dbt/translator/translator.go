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
package translator

import (
	"github.com/jetsetilly/gophernes/dbt/arena"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/dbt/preferences"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/logger"
)

// Source is the address space that source bytes are read from.
type Source interface {
	// Peek returns the byte at the address without side effects
	Peek(addr uint16) uint8

	// Physical returns the offset of the address in the backing buffer
	Physical(addr uint16) int
}

// Runtime provides the host addresses embedded in translated code and is
// told of each new unit.
type Runtime interface {
	VariableAddress(v host.Variable) uint32
	SlotAddress(addr uint16) uint32
	Record(u Unit)
}

// Fault describes a source byte for which no pattern exists.
type Fault struct {
	Address uint16
	Opcode  uint8
}

// Unit describes one translated unit.
type Unit struct {
	// source address of the first instruction and its offset in the backing
	// buffer
	Origin   uint16
	Physical int

	// position in the code arena. size includes padding
	Offset int
	Size   int

	// number of source bytes translated
	SourceLength int

	// number of source instructions translated and the number of patches
	// applied to the templates of those instructions
	Instructions int
	Patches      int

	// the unit ends with a trap because of an unknown opcode
	Faulted bool
}

// Stats records the work done by the translator.
type Stats struct {
	Units        int
	Instructions int
	Bytes        int
	Faults       int
}

// Translator produces units of host code.
type Translator struct {
	dict  *dictionary.Dictionary
	arena *arena.Arena
	src   Source
	rt    Runtime
	prefs *preferences.Preferences

	// called synchronously for every unknown opcode
	OnFault func(Fault)

	// unknown opcodes are logged once per opcode value
	logged logger.Latch

	stats Stats
}

// NewTranslator is the preferred method of initialisation for the
// Translator type.
func NewTranslator(dict *dictionary.Dictionary, a *arena.Arena, src Source, rt Runtime, prefs *preferences.Preferences) *Translator {
	return &Translator{
		dict:  dict,
		arena: a,
		src:   src,
		rt:    rt,
		prefs: prefs,
	}
}

// Stats returns the translation statistics so far.
func (tr *Translator) Stats() Stats {
	return tr.stats
}

// Translate the source code beginning at the origin. An error is returned
// only if the arena is exhausted.
func (tr *Translator) Translate(origin uint16) (Unit, error) {
	u := Unit{
		Origin:   origin,
		Physical: tr.src.Physical(origin),
	}

	b := tr.arena.Begin()
	cursor := origin

	for {
		if cursor != origin && cursor>>addrspace.PageShift != origin>>addrspace.PageShift {
			if _, err := b.Emit([]byte{byte(host.GO), uint8(cursor), uint8(cursor >> 8)}); err != nil {
				b.Rollback()
				return u, err
			}
			break // for loop
		}

		rec, ok := tr.match(cursor)
		if !ok {
			op := tr.src.Peek(cursor)
			tr.fault(Fault{Address: cursor, Opcode: op})

			if tr.prefs.IgnoreUnknown.Get().(bool) {
				cursor++
				continue // for loop
			}

			if _, err := b.Emit([]byte{byte(host.TRAP), uint8(cursor), uint8(cursor >> 8)}); err != nil {
				b.Rollback()
				return u, err
			}
			u.Faulted = true
			break // for loop
		}

		n, err := tr.emit(b, rec, cursor)
		if err != nil {
			b.Rollback()
			return u, err
		}

		u.Patches += n
		u.Instructions++
		cursor += uint16(rec.SourceLength)

		if rec.Stop() {
			break // for loop
		}
	}

	u.SourceLength = int(cursor - origin)

	var err error
	u.Offset, u.Size, err = b.Commit()
	if err != nil {
		return u, err
	}

	tr.stats.Units++
	tr.stats.Instructions += u.Instructions
	tr.stats.Bytes += u.Size

	tr.rt.Record(u)

	return u, nil
}

// match walks the trie from the root. returns false if the walk dead-ends
// or if it goes deeper than the longest pattern.
func (tr *Translator) match(cursor uint16) (dictionary.Record, bool) {
	block := tr.dict.Root()
	for i := 0; i < rules.MaxLength; i++ {
		s := tr.dict.Step(block, tr.src.Peek(cursor+uint16(i)))
		switch {
		case s.Empty():
			return dictionary.Record{}, false
		case s.Leaf():
			return tr.dict.Pattern(s.Offset()), true
		}
		block = s.Offset()
	}
	return dictionary.Record{}, false
}

func (tr *Translator) fault(f Fault) {
	tr.stats.Faults++

	if tr.OnFault != nil {
		tr.OnFault(f)
	}

	logger.Logf(tr.logged.Permit(f.Opcode), "translator", "unknown opcode %#02x at %#04x", f.Opcode, f.Address)
}

// emit copies the template to the builder and records the patches for each
// directive. returns the number of patches recorded.
func (tr *Translator) emit(b *arena.Builder, rec dictionary.Record, cursor uint16) (int, error) {
	base, err := b.Emit(rec.Template)
	if err != nil {
		return 0, err
	}

	word := func(a uint16) uint16 {
		return uint16(tr.src.Peek(a)) | uint16(tr.src.Peek(a+1))<<8
	}

	n := 0
	for _, d := range rec.Directives {
		var v uint32

		operand := cursor + uint16(d.Operand)

		switch d.Kind {
		case rules.Lit:
			v = uint32(tr.src.Peek(operand))
		case rules.Word:
			v = uint32(word(operand))
		case rules.Rel:
			v = uint32(cursor + uint16(rec.SourceLength) + uint16(int8(tr.src.Peek(operand))))
		case rules.Var:
			v = tr.rt.VariableAddress(host.Variable(d.Operand))
		case rules.Tbl:
			v = tr.rt.SlotAddress(word(operand))
		case rules.PC:
			v = uint32(operand)
		case rules.Trap:
			v = uint32(host.TRAP) | uint32(cursor)<<8
		default:
			continue // for loop
		}

		if err := b.Patch(base+int(d.Offset), d.Kind.Width(), v); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}
