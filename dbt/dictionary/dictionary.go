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
package dictionary

import (
	"encoding/binary"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/dbt/rules"
)

// Sentinel error patterns.
const (
	InvalidBlob = "dictionary: invalid blob: %s"
	BadRecord   = "dictionary: bad pattern record at offset %d: %s"
)

// Slot is a single entry in a branch block.
type Slot uint32

// Empty returns true if no pattern continues through the slot.
func (s Slot) Empty() bool {
	return s == 0
}

// Leaf returns true if the slot refers to a pattern record.
func (s Slot) Leaf() bool {
	return uint32(s)&LeafTag == LeafTag
}

// Offset returns the offset of the child block or of the pattern record.
func (s Slot) Offset() uint32 {
	return uint32(s) &^ LeafTag
}

// Record is a decoded pattern record.
type Record struct {
	Offset       uint32
	SourceLength int
	Template     []byte
	Directives   []rules.Directive
}

// Stop returns true if the record ends a translation unit.
func (r Record) Stop() bool {
	for _, d := range r.Directives {
		if d.Kind == rules.Stop {
			return true
		}
	}
	return false
}

// Dictionary is a loaded and validated blob.
type Dictionary struct {
	blocks  []byte
	data    []byte
	records map[uint32]Record
}

// Load validates the serialised blob and returns a Dictionary. The
// Dictionary refers to the byte slice and it should not be altered.
func Load(blob []byte) (*Dictionary, error) {
	if len(blob) < HeaderSize {
		return nil, curated.Errorf(InvalidBlob, "too short")
	}
	if string(blob[:4]) != Magic {
		return nil, curated.Errorf(InvalidBlob, "wrong magic")
	}
	if binary.LittleEndian.Uint16(blob[4:]) != Version {
		return nil, curated.Errorf(InvalidBlob, "unsupported version")
	}

	numBlocks := int(binary.LittleEndian.Uint32(blob[8:]))
	dataLen := int(binary.LittleEndian.Uint32(blob[12:]))
	if numBlocks < 1 {
		return nil, curated.Errorf(InvalidBlob, "no root block")
	}
	if len(blob) != HeaderSize+numBlocks*BlockBytes+dataLen {
		return nil, curated.Errorf(InvalidBlob, "length does not match header")
	}

	d := &Dictionary{
		blocks:  blob[HeaderSize : HeaderSize+numBlocks*BlockBytes],
		data:    blob[HeaderSize+numBlocks*BlockBytes:],
		records: make(map[uint32]Record),
	}

	// decode every record in the data region
	o := 0
	for o < len(d.data) {
		r, next, err := decodeRecord(d.data, o)
		if err != nil {
			return nil, err
		}
		d.records[r.Offset] = r
		o = next
	}

	// every slot must refer to a record or to a block. the blocks must form
	// a tree below the root: a child block is always allocated after its
	// parent so a branch must point forwards, no block has two parents and
	// no path is longer than the longest pattern
	parented := make([]bool, numBlocks)
	depth := make([]int, numBlocks)
	for i := 0; i < numBlocks*BlockSlots; i++ {
		blk := i / BlockSlots
		s := Slot(binary.LittleEndian.Uint32(d.blocks[i*SlotBytes:]))
		switch {
		case s.Empty():
		case s.Leaf():
			if _, ok := d.records[s.Offset()]; !ok {
				return nil, curated.Errorf(InvalidBlob, "leaf does not refer to a pattern record")
			}
		default:
			if s.Offset()%BlockBytes != 0 || int(s.Offset()/BlockBytes) >= numBlocks {
				return nil, curated.Errorf(InvalidBlob, "branch does not refer to a block")
			}
			child := int(s.Offset() / BlockBytes)
			if child <= blk {
				return nil, curated.Errorf(InvalidBlob, "branch does not point forwards")
			}
			if parented[child] {
				return nil, curated.Errorf(InvalidBlob, "block has more than one parent")
			}
			parented[child] = true
			depth[child] = depth[blk] + 1
			if depth[child] >= rules.MaxLength {
				return nil, curated.Errorf(InvalidBlob, "trie is deeper than the longest pattern")
			}
		}
	}

	return d, nil
}

func decodeRecord(data []byte, o int) (Record, int, error) {
	r := Record{Offset: uint32(o)}

	if o+2 > len(data) {
		return r, 0, curated.Errorf(BadRecord, o, "truncated")
	}

	r.SourceLength = int(data[o])
	if r.SourceLength == 0 {
		r.SourceLength = rules.MaxLength
	}

	tl := int(data[o+1])
	p := o + 2
	if p+tl > len(data) {
		return r, 0, curated.Errorf(BadRecord, o, "truncated template")
	}
	r.Template = data[p : p+tl]
	p += tl

	for {
		if p >= len(data) {
			return r, 0, curated.Errorf(BadRecord, o, "unterminated directives")
		}
		if data[p] == 0 {
			break // for loop
		}
		if p+3 > len(data) {
			return r, 0, curated.Errorf(BadRecord, o, "truncated directive")
		}

		dir := rules.Directive{
			Kind:    rules.Kind(data[p]),
			Offset:  data[p+1],
			Operand: data[p+2],
		}
		if dir.Kind > rules.Trap {
			return r, 0, curated.Errorf(BadRecord, o, "unknown directive kind")
		}
		if int(dir.Offset)+dir.Kind.Width() > tl {
			return r, 0, curated.Errorf(BadRecord, o, "directive does not fit template")
		}
		if dir.Kind == rules.Var {
			if _, ok := host.VariableOffset(host.Variable(dir.Operand)); !ok {
				return r, 0, curated.Errorf(BadRecord, o, "unknown variable")
			}
		}
		r.Directives = append(r.Directives, dir)
		p += 3
	}

	// skip zero kind and check terminator
	p++
	if p >= len(data) || data[p] != recordTerminator {
		return r, 0, curated.Errorf(BadRecord, o, "missing terminator")
	}

	return r, p + 1, nil
}

// Root returns the offset of the root block.
func (d *Dictionary) Root() uint32 {
	return 0
}

// Step returns the slot for the byte in the block at the offset.
func (d *Dictionary) Step(block uint32, b uint8) Slot {
	return Slot(binary.LittleEndian.Uint32(d.blocks[block+uint32(b)*SlotBytes:]))
}

// Pattern returns the pattern record at the offset. The offset should be
// taken from a leaf slot.
func (d *Dictionary) Pattern(offset uint32) Record {
	return d.records[offset]
}

// Stats summarises the contents of a dictionary.
type Stats struct {
	Blocks     int
	Records    int
	DataLength int
	Branches   int
	Leaves     int
	Empty      int
}

// Stats returns a summary of the dictionary.
func (d *Dictionary) Stats() Stats {
	st := Stats{
		Blocks:     len(d.blocks) / BlockBytes,
		Records:    len(d.records),
		DataLength: len(d.data),
	}

	for i := 0; i < len(d.blocks); i += SlotBytes {
		s := Slot(binary.LittleEndian.Uint32(d.blocks[i:]))
		switch {
		case s.Empty():
			st.Empty++
		case s.Leaf():
			st.Leaves++
		default:
			st.Branches++
		}
	}

	return st
}
