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
package hardware

import (
	"github.com/jetsetilly/gophernes/dbt/host"
)

// Timing constants. The timing of the emulation is an approximation. Events
// happen at scanline boundaries only.
const (
	CyclesPerScanline     = 114
	ScanlinesPerFrame     = 262
	VisibleScanlines      = 240
	VBlankScanline        = 241
	PreRenderScanline     = 261
	SpriteZeroOffset      = 8
	AudioServiceScanlines = 65
	DMACycles             = 513
	InterruptCycles       = 7
)

type timing struct {
	scanline int
	frame    int

	// the vblank and sprite zero hit bits of PPUSTATUS
	vblank bool
	hit    bool

	// number of scanlines since the audio was last serviced
	audio int
}

// endScanline is called when the cycle budget for the scanline has been
// spent.
func (nes *NES) endScanline() {
	t := &nes.timing

	if t.scanline < VisibleScanlines {
		if nes.spriteZero != nil && !t.hit {
			if y, ok := nes.spriteZero.SpriteZeroLine(); ok && t.scanline >= y+SpriteZeroOffset {
				t.hit = true
			}
		}
		if nes.Cart.Scanline() {
			nes.ctx.Raise(host.PendingIRQ)
		}
	}

	t.audio++
	if t.audio >= AudioServiceScanlines {
		t.audio = 0
		if nes.audio != nil {
			nes.audio.Service()
		}
	}

	t.scanline++

	switch t.scanline {
	case VBlankScanline:
		t.vblank = true
		t.frame++
		nes.stats.Frames++
		if nes.video != nil {
			nes.video.EndFrame()
		}
		if nes.ppuctrl&0x80 == 0x80 {
			nes.ctx.Raise(host.PendingNMI)
		}
	case PreRenderScanline:
		t.vblank = false
		t.hit = false
	case ScanlinesPerFrame:
		t.scanline = 0
	}
}

// Scanline returns the current scanline and frame number.
func (nes *NES) Scanline() (int, int) {
	return nes.timing.scanline, nes.timing.frame
}
