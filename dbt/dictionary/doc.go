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
// Package dictionary compiles patterns into a trie and serialises the trie
// as a relocatable blob. The blob is loaded at run time by the translator.
//
// The trie is made of branch blocks of exactly 256 slots. A slot is either
// empty (zero), the offset of a child branch block, or the offset of a
// pattern record tagged with LeafTag. The root is always the first block.
//
// Patterns are inserted one at a time with the Compiler. When a longer
// pattern needs to continue matching past a position where a shorter pattern
// has already ended, the leaf of the shorter pattern is promoted to a branch
// by cloning it into every slot of a new block. Matching is therefore greedy
// and never needs to backtrack: the first leaf found on the way down is
// the longest pattern that matches.
//
// The blob consists of a header, the branch blocks and the pattern data.
// All references in the blob are offsets relative to the start of the block
// region or the data region so the blob can be loaded at any address.
//
//	header   magic "GNDT", version (2 bytes), reserved (2 bytes),
//	         block count (4 bytes), data length (4 bytes)
//	blocks   block count * 256 slots of 4 bytes
//	data     pattern records
//
// A pattern record is:
//
//	[source length] [template length] [template ...]
//	[kind offset operand]* [0] [0xff]
//
// A source length of zero means 256. All multi-byte values are little-endian.
package dictionary
