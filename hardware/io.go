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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Hook is implemented by anything that responds to reads and writes of
// memory mapped registers. For reads, the data argument is undefined and
// the return value is the value read. For writes, the return value is
// ignored.
//
// Addresses are normalised before Access() is called.
type Hook interface {
	Access(addr uint16, data uint8, write bool) uint8
}

// HookFunc is an adapter that allows a function to be used as a Hook.
type HookFunc func(addr uint16, data uint8, write bool) uint8

// Access implements the Hook interface.
func (f HookFunc) Access(addr uint16, data uint8, write bool) uint8 {
	return f(addr, data, write)
}

// Video is the interface to the rendering collaborator. The video hook is
// attached to the PPU registers.
type Video interface {
	Hook

	// EndFrame is called at the start of the vertical blank
	EndFrame()
}

// SpriteZero is an optional interface for a Video implementation. The
// returned value is the Y coordinate of sprite zero. If the boolean is
// false then sprite zero will never hit.
type SpriteZero interface {
	SpriteZeroLine() (int, bool)
}

// Audio is the interface to the sound collaborator. The audio hook is
// attached to the APU registers.
type Audio interface {
	Hook

	// Service is called every AudioServiceScanlines scanlines
	Service()
}

// InvalidHookRange is returned by Attach() for address ranges that cannot
// have hooks.
const InvalidHookRange = "nes: cannot attach hook to range %#04x to %#04x"

// hooks can be attached to the PPU, APU and expansion areas
const (
	hookOrigin = memorymap.OriginPPU
	hookMemtop = memorymap.MemtopExpansion
)

// Attach a hook to the address range. Addresses in the range are
// normalised so a hook attached to any of the PPU register mirrors is
// attached to the primary address. A later hook replaces an earlier hook
// for the same address.
func (nes *NES) Attach(lo uint16, hi uint16, hook Hook) error {
	if lo > hi || lo < hookOrigin || hi > hookMemtop {
		return curated.Errorf(InvalidHookRange, lo, hi)
	}
	for a := int(lo); a <= int(hi); a++ {
		nes.hooks[memorymap.Normalise(uint16(a))-hookOrigin] = hook
	}
	return nil
}

// AttachVideo attaches the video collaborator to the PPU registers.
func (nes *NES) AttachVideo(v Video) error {
	if err := nes.Attach(memorymap.OriginPPU, memorymap.OriginPPU+7, v); err != nil {
		return err
	}
	nes.video = v
	nes.spriteZero, _ = v.(SpriteZero)
	return nil
}

// AttachAudio attaches the audio collaborator to the APU registers.
func (nes *NES) AttachAudio(a Audio) error {
	if err := nes.Attach(memorymap.OriginAPU, memorymap.OAMDMA-1, a); err != nil {
		return err
	}
	if err := nes.Attach(memorymap.SNDCHN, memorymap.SNDCHN, a); err != nil {
		return err
	}
	nes.audio = a
	return nil
}

// AttachInput attaches the controller hook to the joystick registers.
func (nes *NES) AttachInput(h Hook) error {
	return nes.Attach(memorymap.JOY1, memorymap.JOY2, h)
}

func (nes *NES) hook(addr uint16) Hook {
	return nes.hooks[addr-hookOrigin]
}

// read the address as the CPU does. reading some registers has side effects.
func (nes *NES) read(addr uint16) uint8 {
	if addr <= memorymap.MemtopRAM || addr >= memorymap.OriginSRAM {
		return nes.Space.Read(addr)
	}

	addr = memorymap.Normalise(addr)

	var v uint8
	if h := nes.hook(addr); h != nil {
		v = h.Access(addr, 0, false)
	} else {
		v = nes.Space.Read(addr)
	}

	if addr == memorymap.PPUSTATUS {
		v &= 0x1f
		if nes.timing.vblank {
			v |= 0x80
		}
		if nes.timing.hit {
			v |= 0x40
		}
		nes.timing.vblank = false
	}

	return v
}

func (nes *NES) read16(addr uint16) uint16 {
	return uint16(nes.read(addr)) | uint16(nes.read(addr+1))<<8
}

// write the address as the CPU does. writes to cartridge space are sent to
// the mapper.
func (nes *NES) write(addr uint16, data uint8) error {
	switch {
	case addr <= memorymap.MemtopRAM:
		nes.Space.Write(addr, data)
		return nil
	case addr >= memorymap.OriginPRG:
		return nes.Cart.Write(addr, data)
	case addr >= memorymap.OriginSRAM:
		nes.Space.Write(addr, data)
		return nil
	}

	addr = memorymap.Normalise(addr)

	switch addr {
	case memorymap.PPUCTRL:
		// enabling NMI during the vertical blank causes an immediate NMI
		if data&0x80 == 0x80 && nes.ppuctrl&0x80 == 0x00 && nes.timing.vblank {
			nes.ctx.Raise(host.PendingNMI)
		}
		nes.ppuctrl = data
	case memorymap.OAMDMA:
		nes.dma(data)
	}

	if h := nes.hook(addr); h != nil {
		h.Access(addr, data, true)
	}

	return nil
}

// dma copies a page of memory to the sprite memory of the video
// collaborator.
func (nes *NES) dma(page uint8) {
	base := uint16(page) << 8
	for i := uint16(0); i < 0x100; i++ {
		v := nes.read(base | i)
		if nes.video != nil {
			nes.video.Access(memorymap.OAMDATA, v, true)
		}
	}
	nes.ctx.Spend(DMACycles)
}

func (nes *NES) push(v uint8) {
	sp := nes.ctx.SP()
	nes.Space.Write(memorymap.OriginStack|uint16(sp), v)
	nes.ctx.SetSP(sp - 1)
}

func (nes *NES) pull() uint8 {
	sp := nes.ctx.SP() + 1
	nes.ctx.SetSP(sp)
	return nes.Space.Read(memorymap.OriginStack | uint16(sp))
}
