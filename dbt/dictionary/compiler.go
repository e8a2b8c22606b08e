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
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/logger"
)

// Sentinel error patterns.
const (
	BlockPoolExhausted = "dictionary: block pool exhausted (capacity %d blocks)"
	DataPoolExhausted  = "dictionary: data pool exhausted (capacity %d bytes)"
	EmptyPattern       = "dictionary: pattern has no source bytes (%s:%d)"
)

// Default pool capacities.
const (
	DefaultMaxBlocks = 256
	DefaultMaxData   = 0x10000
)

// CompilerStats records what happened during compilation.
type CompilerStats struct {
	Patterns   int
	Promotions int
	Shadowed   int
}

// Compiler builds a trie from a sequence of patterns. The block and data
// pools are allocated once when the Compiler is created and are never grown.
type Compiler struct {
	maxBlocks int
	maxData   int

	// the block pool. internally, a branch slot holds the index of the child
	// block. the root is block zero so a zero slot is always empty
	blocks  []uint32
	nblocks int

	// the data pool
	data []byte

	// the number of source bytes in the match key of each leaf and where the
	// pattern for the leaf was defined
	keyLen map[uint32]int
	origin map[uint32]string

	stats CompilerStats
}

// NewCompiler is the preferred method of initialisation for the Compiler
// type.
func NewCompiler(maxBlocks int, maxData int) *Compiler {
	if maxBlocks < 1 {
		maxBlocks = 1
	}
	if maxData > int(^LeafTag) {
		maxData = int(^LeafTag)
	}

	c := &Compiler{
		maxBlocks: maxBlocks,
		maxData:   maxData,
		blocks:    make([]uint32, maxBlocks*BlockSlots),
		nblocks:   1,
		data:      make([]byte, 0, maxData),
		keyLen:    make(map[uint32]int),
		origin:    make(map[uint32]string),
	}

	return c
}

// Stats returns the compilation statistics so far.
func (c *Compiler) Stats() CompilerStats {
	return c.stats
}

// Add a pattern to the trie. Patterns added later take precedence over
// earlier patterns with an identical match key.
func (c *Compiler) Add(p rules.Pattern) error {
	if len(p.Match) == 0 {
		return curated.Errorf(EmptyPattern, p.File, p.Line)
	}

	leaf, err := c.record(p)
	if err != nil {
		return err
	}
	c.keyLen[leaf] = len(p.Match)
	c.origin[leaf] = fmt.Sprintf("%s:%d", p.File, p.Line)
	c.stats.Patterns++

	return c.insert(0, p, 0, leaf)
}

// AddAll adds each pattern in turn.
func (c *Compiler) AddAll(patterns []rules.Pattern) error {
	for _, p := range patterns {
		if err := c.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// record appends the pattern record to the data pool and returns the leaf
// value for the record.
func (c *Compiler) record(p rules.Pattern) (uint32, error) {
	rec := make([]byte, 0, 4+len(p.Template)+len(p.Directives)*3)
	rec = append(rec, uint8(p.Length), uint8(len(p.Template)))
	rec = append(rec, p.Template...)
	for _, d := range p.Directives {
		rec = append(rec, uint8(d.Kind), d.Offset, d.Operand)
	}
	rec = append(rec, 0, recordTerminator)

	if len(c.data)+len(rec) > c.maxData {
		return 0, curated.Errorf(DataPoolExhausted, c.maxData)
	}

	offset := uint32(len(c.data))
	c.data = append(c.data, rec...)

	return LeafTag | offset, nil
}

func (c *Compiler) newBlock() (uint32, error) {
	if c.nblocks >= c.maxBlocks {
		return 0, curated.Errorf(BlockPoolExhausted, c.maxBlocks)
	}
	n := uint32(c.nblocks)
	c.nblocks++
	return n, nil
}

func (c *Compiler) slots(block uint32) []uint32 {
	return c.blocks[block*BlockSlots : (block+1)*BlockSlots]
}

func (c *Compiler) insert(block uint32, p rules.Pattern, depth int, leaf uint32) error {
	m := p.Match[depth]
	final := depth == len(p.Match)-1

	slots := c.slots(block)
	for v := 0; v < BlockSlots; v++ {
		if !m.Matches(uint8(v)) {
			continue // for loop
		}

		if final {
			c.settle(&slots[v], leaf)
			continue // for loop
		}

		switch {
		case slots[v] == 0:
			n, err := c.newBlock()
			if err != nil {
				return err
			}
			slots[v] = n

		case slots[v]&LeafTag == LeafTag:
			// promote leaf to a branch. the shorter pattern still matches
			// whatever byte follows
			n, err := c.newBlock()
			if err != nil {
				return err
			}
			clone := c.slots(n)
			for i := range clone {
				clone[i] = slots[v]
			}
			slots[v] = n
			c.stats.Promotions++
		}

		if err := c.insert(slots[v], p, depth+1, leaf); err != nil {
			return err
		}
	}

	return nil
}

// settle places the leaf in the slot at the final position of its match key.
// a branch in the slot means that longer patterns continue through it. in
// that case the leaf replaces every empty slot and every leaf of a shorter
// pattern below the branch.
func (c *Compiler) settle(slot *uint32, leaf uint32) {
	switch {
	case *slot == 0:
		*slot = leaf

	case *slot&LeafTag == LeafTag:
		if *slot == leaf {
			return
		}

		old := c.keyLen[*slot]
		if old < c.keyLen[leaf] {
			*slot = leaf
			return
		}
		if old == c.keyLen[leaf] {
			c.stats.Shadowed++
			logger.Logf(logger.Allow, "dictionary", "pattern at %s shadowed by pattern at %s", c.origin[*slot], c.origin[leaf])
			*slot = leaf
		}

	default:
		for i := range c.slots(*slot) {
			c.settle(&c.slots(*slot)[i], leaf)
		}
	}
}

// Compile serialises the trie. The Compiler can continue to be used after a
// call to Compile().
func (c *Compiler) Compile() (*Blob, error) {
	b := &Blob{
		Blocks: make([]uint32, c.nblocks*BlockSlots),
		Data:   make([]byte, len(c.data)),
	}

	// convert block indexes to offsets into the block region. leaves are
	// already offsets into the data region
	for i, s := range c.blocks[:c.nblocks*BlockSlots] {
		if s != 0 && s&LeafTag == 0 {
			s *= BlockBytes
		}
		b.Blocks[i] = s
	}
	copy(b.Data, c.data)

	return b, nil
}
