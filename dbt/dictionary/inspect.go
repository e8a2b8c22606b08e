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
	"io"
	"strings"
)

// Node is a decoded branch block. Nodes are created by Inspect() and are
// intended for display. They are not used during translation.
type Node struct {
	Offset uint32
	Edges  []Edge
}

// Edge is a run of consecutive slots in a branch block that have the same
// content. Empty slots are not represented. Exactly one of Child and Record
// is non-nil.
type Edge struct {
	First  uint8
	Last   uint8
	Child  *Node
	Record *Record
}

// Inspect decodes the trie into a tree of Nodes.
func Inspect(d *Dictionary) *Node {
	return inspect(d, d.Root())
}

func inspect(d *Dictionary, block uint32) *Node {
	n := &Node{Offset: block}

	v := 0
	for v < BlockSlots {
		s := d.Step(block, uint8(v))

		// extend the run for as long as the slot content is the same
		e := v
		for e+1 < BlockSlots && d.Step(block, uint8(e+1)) == s {
			e++
		}

		if !s.Empty() {
			edge := Edge{First: uint8(v), Last: uint8(e)}
			if s.Leaf() {
				r := d.Pattern(s.Offset())
				edge.Record = &r
			} else {
				edge.Child = inspect(d, s.Offset())
			}
			n.Edges = append(n.Edges, edge)
		}

		v = e + 1
	}

	return n
}

// Write the tree to the io.Writer. One line per edge with child nodes
// indented below their parent.
func (n *Node) Write(w io.Writer) {
	n.write(w, 0)
}

func (n *Node) write(w io.Writer, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range n.Edges {
		k := fmt.Sprintf("%02x", e.First)
		if e.Last != e.First {
			k = fmt.Sprintf("%02x-%02x", e.First, e.Last)
		}

		if e.Record != nil {
			fmt.Fprintf(w, "%s%s: len=%d tpl=%d dirs=%d", indent, k, e.Record.SourceLength, len(e.Record.Template), len(e.Record.Directives))
			if e.Record.Stop() {
				fmt.Fprint(w, " stop")
			}
			fmt.Fprintln(w)
		} else {
			fmt.Fprintf(w, "%s%s: block %d\n", indent, k, e.Child.Offset/BlockBytes)
			e.Child.write(w, depth+1)
		}
	}
}
