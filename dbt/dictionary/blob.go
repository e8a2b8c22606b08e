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
	"bytes"
	"encoding/binary"
	"io"
)

// Layout constants of the blob.
const (
	Magic      = "GNDT"
	Version    = 1
	HeaderSize = 16

	BlockSlots = 256
	SlotBytes  = 4
	BlockBytes = BlockSlots * SlotBytes

	// LeafTag distinguishes a leaf slot from a branch slot
	LeafTag uint32 = 0x80000000

	recordTerminator = 0xff
)

// Blob is the compiled form of the trie.
type Blob struct {
	// the branch blocks. branch slots are offsets into the block region
	Blocks []uint32

	// the pattern records
	Data []byte
}

// NumBlocks returns the number of branch blocks in the blob.
func (b *Blob) NumBlocks() int {
	return len(b.Blocks) / BlockSlots
}

// Bytes returns the serialised blob.
func (b *Blob) Bytes() []byte {
	buf := make([]byte, HeaderSize+len(b.Blocks)*SlotBytes+len(b.Data))

	copy(buf, Magic)
	binary.LittleEndian.PutUint16(buf[4:], Version)
	binary.LittleEndian.PutUint32(buf[8:], uint32(b.NumBlocks()))
	binary.LittleEndian.PutUint32(buf[12:], uint32(len(b.Data)))

	o := HeaderSize
	for _, s := range b.Blocks {
		binary.LittleEndian.PutUint32(buf[o:], s)
		o += SlotBytes
	}
	copy(buf[o:], b.Data)

	return buf
}

// WriteTo implements the io.WriterTo interface.
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.Bytes()).WriteTo(w)
}
