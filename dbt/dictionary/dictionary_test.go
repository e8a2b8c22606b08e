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
package dictionary_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/rules"
	"github.com/jetsetilly/gophernes/test"
)

func compile(t *testing.T, src string) (*dictionary.Compiler, *dictionary.Dictionary) {
	t.Helper()

	p, err := rules.Parse("test.rules", strings.NewReader(src))
	if err != nil {
		t.Fatalf("%v", err)
	}

	c := dictionary.NewCompiler(dictionary.DefaultMaxBlocks, dictionary.DefaultMaxData)
	if err := c.AddAll(p); err != nil {
		t.Fatalf("%v", err)
	}

	b, err := c.Compile()
	if err != nil {
		t.Fatalf("%v", err)
	}

	d, err := dictionary.Load(b.Bytes())
	if err != nil {
		t.Fatalf("%v", err)
	}

	return c, d
}

// walk follows the source bytes through the trie and returns the record
// found. returns false if the walk dead-ends.
func walk(d *dictionary.Dictionary, src ...uint8) (dictionary.Record, bool) {
	block := d.Root()
	for _, b := range src {
		s := d.Step(block, b)
		if s.Empty() {
			return dictionary.Record{}, false
		}
		if s.Leaf() {
			return d.Pattern(s.Offset()), true
		}
		block = s.Offset()
	}
	return dictionary.Record{}, false
}

func TestSingleByte(t *testing.T) {
	_, d := compile(t, "EA /1 = 00")

	r, ok := walk(d, 0xea)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.SourceLength, 1)
	test.Equate(t, r.Template, []byte{0x00})
	test.Equate(t, len(r.Directives), 0)

	_, ok = walk(d, 0xeb)
	test.ExpectedFailure(t, ok)

	st := d.Stats()
	test.Equate(t, st.Blocks, 1)
	test.Equate(t, st.Records, 1)
	test.Equate(t, st.Leaves, 1)
	test.Equate(t, st.Empty, 255)
}

func TestMaskedSlots(t *testing.T) {
	_, d := compile(t, "10&1F /2 = 50 00 0000 ; lit 1 0, rel 2 1, stop")

	for b := 0; b < 256; b++ {
		s := d.Step(d.Root(), uint8(b))
		test.Equate(t, s.Leaf(), uint8(b)&0x1f == 0x10)
		test.Equate(t, s.Empty(), uint8(b)&0x1f != 0x10)
	}

	r, ok := walk(d, 0xd0)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, r.Stop())
	test.Equate(t, len(r.Directives), 3)
	test.Equate(t, r.Directives[1].Kind == rules.Rel, true)
}

func TestPromotion(t *testing.T) {
	c, d := compile(t, "AD /3 = 01\nAD 02 20 /3 = 02")
	test.Equate(t, c.Stats().Promotions, 2)

	r, ok := walk(d, 0xad, 0x02, 0x20)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x02})

	// the shorter pattern still matches wherever the longer one does not
	r, ok = walk(d, 0xad, 0x02, 0x21)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x01})

	r, ok = walk(d, 0xad, 0x00)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x01})
}

func TestShorterAfterLonger(t *testing.T) {
	// the order of insertion does not change the result
	_, d := compile(t, "AD 02 20 /3 = 02\nAD /3 = 01")

	r, ok := walk(d, 0xad, 0x02, 0x20)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x02})

	r, ok = walk(d, 0xad, 0x02, 0x21)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x01})

	r, ok = walk(d, 0xad, 0x7f)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x01})
}

func TestShadowed(t *testing.T) {
	c, d := compile(t, "EA /1 = 01\nEA /1 = 02")
	test.Equate(t, c.Stats().Shadowed, 1)

	r, ok := walk(d, 0xea)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Template, []byte{0x02})
}

func TestPoolExhaustion(t *testing.T) {
	p, err := rules.Parse("test.rules", strings.NewReader("AD 02 /3 = 00"))
	test.ExpectedSuccess(t, err)

	c := dictionary.NewCompiler(1, dictionary.DefaultMaxData)
	err = c.Add(p[0])
	test.ExpectedSuccess(t, curated.Is(err, dictionary.BlockPoolExhausted))

	c = dictionary.NewCompiler(dictionary.DefaultMaxBlocks, 4)
	err = c.Add(p[0])
	test.ExpectedSuccess(t, curated.Is(err, dictionary.DataPoolExhausted))
}

func TestDefaultRules(t *testing.T) {
	p, err := rules.Default()
	test.ExpectedSuccess(t, err)

	c := dictionary.NewCompiler(dictionary.DefaultMaxBlocks, dictionary.DefaultMaxData)
	test.ExpectedSuccess(t, c.AddAll(p))
	test.Equate(t, c.Stats().Shadowed, 0)

	b, err := c.Compile()
	test.ExpectedSuccess(t, err)

	d, err := dictionary.Load(b.Bytes())
	test.ExpectedSuccess(t, err)
	test.Equate(t, d.Stats().Records, len(p))

	// LDA $2002 followed by BPL back to the LDA is the spin loop pattern.
	// LDA $2002 followed by anything else is a plain LDA
	r, ok := walk(d, 0xad, 0x02, 0x20, 0x10, 0xfb)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.SourceLength, 5)

	r, ok = walk(d, 0xad, 0x02, 0x20, 0x10, 0xfa)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.SourceLength, 3)

	// KIL
	r, ok = walk(d, 0x02)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, r.Directives[0].Kind == rules.Trap, true)

	// unofficial opcode with no pattern
	_, ok = walk(d, 0xff)
	test.ExpectedFailure(t, ok)
}

func TestRoundTrip(t *testing.T) {
	build := func() []byte {
		p, err := rules.Default()
		test.ExpectedSuccess(t, err)
		c := dictionary.NewCompiler(dictionary.DefaultMaxBlocks, dictionary.DefaultMaxData)
		test.ExpectedSuccess(t, c.AddAll(p))
		b, err := c.Compile()
		test.ExpectedSuccess(t, err)

		w := &bytes.Buffer{}
		n, err := b.WriteTo(w)
		test.ExpectedSuccess(t, err)
		test.Equate(t, n, int64(len(b.Bytes())))
		return w.Bytes()
	}

	test.Equate(t, build(), build())
}

func TestLoadErrors(t *testing.T) {
	c := dictionary.NewCompiler(dictionary.DefaultMaxBlocks, dictionary.DefaultMaxData)
	p, _ := rules.Parse("test.rules", strings.NewReader("EA /1 = 00"))
	test.ExpectedSuccess(t, c.AddAll(p))
	b, _ := c.Compile()
	good := b.Bytes()

	_, err := dictionary.Load(good[:10])
	test.ExpectedError(t, err, dictionary.InvalidBlob)

	bad := append([]byte{}, good...)
	bad[0] = 'X'
	_, err = dictionary.Load(bad)
	test.ExpectedError(t, err, dictionary.InvalidBlob)

	// length mismatch
	_, err = dictionary.Load(good[:len(good)-1])
	test.ExpectedError(t, err, dictionary.InvalidBlob)

	// leaf pointing into the middle of a record
	bad = append([]byte{}, good...)
	slot := dictionary.HeaderSize + 0xea*dictionary.SlotBytes
	bad[slot] = 0x01
	_, err = dictionary.Load(bad)
	test.ExpectedError(t, err, dictionary.InvalidBlob)

	// corrupt record terminator
	bad = append([]byte{}, good...)
	bad[len(bad)-1] = 0x00
	_, err = dictionary.Load(bad)
	test.ExpectedSuccess(t, curated.Is(err, dictionary.BadRecord))
}

func TestLoadCycles(t *testing.T) {
	c := dictionary.NewCompiler(dictionary.DefaultMaxBlocks, dictionary.DefaultMaxData)
	p, _ := rules.Parse("test.rules", strings.NewReader("EA AD /2 = 00"))
	test.ExpectedSuccess(t, c.AddAll(p))
	b, _ := c.Compile()
	good := b.Bytes()
	test.Equate(t, b.NumBlocks(), 2)

	_, err := dictionary.Load(good)
	test.ExpectedSuccess(t, err)

	slot := func(block int, v int) int {
		return dictionary.HeaderSize + block*dictionary.BlockBytes + v*dictionary.SlotBytes
	}

	// every slot of block 1 refers to block 1
	bad := append([]byte{}, good...)
	for v := 0; v < dictionary.BlockSlots; v++ {
		binary.LittleEndian.PutUint32(bad[slot(1, v):], dictionary.BlockBytes)
	}
	_, err = dictionary.Load(bad)
	test.ExpectedError(t, err, dictionary.InvalidBlob)

	// two slots of the root refer to block 1
	bad = append([]byte{}, good...)
	binary.LittleEndian.PutUint32(bad[slot(0, 0xeb):], dictionary.BlockBytes)
	_, err = dictionary.Load(bad)
	test.ExpectedError(t, err, dictionary.InvalidBlob)
}

func TestInspect(t *testing.T) {
	_, d := compile(t, "AD /3 = 01\nAD 02 /3 = 02 ; stop")

	n := dictionary.Inspect(d)
	test.Equate(t, len(n.Edges), 1)
	test.Equate(t, n.Edges[0].First, 0xad)
	test.ExpectedSuccess(t, n.Edges[0].Child != nil)

	w := &test.Writer{}
	n.Write(w)
	test.ExpectedSuccess(t, w.Contains("ad: block 1"))
	test.ExpectedSuccess(t, w.Contains("  00-01: len=3 tpl=1 dirs=0"))
	test.ExpectedSuccess(t, w.Contains("  02: len=3 tpl=1 dirs=1 stop"))
	test.ExpectedSuccess(t, w.Contains("  03-ff: len=3 tpl=1 dirs=0"))
}
