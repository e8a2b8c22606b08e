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
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/dbt/arena"
	"github.com/jetsetilly/gophernes/dbt/dictionary"
	"github.com/jetsetilly/gophernes/dbt/host"
	"github.com/jetsetilly/gophernes/dbt/preferences"
	"github.com/jetsetilly/gophernes/dbt/translator"
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/logger"
)

// Stats records the work done by the NES.
type Stats struct {
	Translator translator.Stats

	Frames     int
	Cycles     int64
	Interrupts int

	// number of times the executor returned to the dispatcher
	Exits int

	// number of control transfers that went directly to another unit
	Chains int

	// number of units found in the physical index after the dispatch table
	// slot had been cleared
	Relinks int
}

func (s Stats) String() string {
	return fmt.Sprintf("units %d (%d bytes), frames %d, cycles %d, exits %d, chains %d, relinks %d, interrupts %d",
		s.Translator.Units, s.Translator.Bytes, s.Frames, s.Cycles, s.Exits, s.Chains, s.Relinks, s.Interrupts)
}

// NES is the root of the emulation.
type NES struct {
	CPU   *CPU
	Space *addrspace.Space
	Cart  *cartridge.Cartridge

	// called synchronously whenever the translator meets a byte that does
	// not begin any pattern
	OnFault func(translator.Fault)

	prefs      *preferences.Preferences
	ctx        *Context
	code       *arena.Arena
	data       *arena.Arena
	translator *translator.Translator

	// every unit ever translated. units are never discarded
	units []translator.Unit

	// the index of the unit (plus one) for each offset in the backing buffer
	index []uint32

	hooks      [hookMemtop - hookOrigin + 1]Hook
	video      Video
	spriteZero SpriteZero
	audio      Audio

	// last value written to PPUCTRL
	ppuctrl uint8

	timing timing
	state  State
	jammed bool

	// error raised by the executor
	err error

	stats Stats
}

// NewNES is the preferred method of initialisation for the NES type. The
// mapper is created from the cartridge's MapperID. If prefs is nil then
// default preferences are used.
func NewNES(dict *dictionary.Dictionary, cart *cartridge.Cartridge, prefs *preferences.Preferences) (*NES, error) {
	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	nes := &NES{
		CPU:   newCPU(),
		Cart:  cart,
		prefs: prefs,
	}

	nes.Space = addrspace.NewSpace(cart.PRG, memorymap.RAMSize, memorymap.SRAMSize)

	m, err := cartridge.NewRegistry().Create(cart.MapperID)
	if err != nil {
		return nil, err
	}
	if err := cart.Attach(nes.Space, m); err != nil {
		return nil, err
	}

	nes.data, err = arena.New(host.DataSize)
	if err != nil {
		return nil, err
	}
	d, err := nes.data.Reserve(host.DataSize)
	if err != nil {
		return nil, err
	}
	nes.ctx = newContext(d)

	nes.code, err = arena.New(prefs.Arena.Get().(int))
	if err != nil {
		_ = nes.data.Release()
		return nil, err
	}

	nes.index = make([]uint32, len(nes.Space.Backing()))

	nes.translator = translator.NewTranslator(dict, nes.code, nes.Space, nes, prefs)
	nes.translator.OnFault = nes.fault

	nes.Space.OnRemap(nes.remap)

	nes.Reset()

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s PC=%#04x SP=%#02x", nes.CPU, nes.ctx.PC, nes.ctx.SP())
}

// Release the memory used by the NES. The NES should not be used after
// Release().
func (nes *NES) Release() error {
	if err := nes.code.Release(); err != nil {
		return err
	}
	return nes.data.Release()
}

// Reset emulates the reset button. Translated units survive a reset.
func (nes *NES) Reset() {
	nes.ctx.reset()
	nes.CPU.Reset()
	nes.ctx.SetSP(0xfd)
	nes.ctx.PC = nes.read16(memorymap.ResetVector)

	nes.timing = timing{}
	nes.ppuctrl = 0
	nes.state = Servicing
	nes.jammed = false
	nes.err = nil

	logger.Logf(logger.Allow, "nes", "reset: PC=%#04x", nes.ctx.PC)
}

// Context returns the execution context.
func (nes *NES) Context() *Context {
	return nes.ctx
}

// State returns the current state of the NES.
func (nes *NES) State() State {
	return nes.state
}

// Jammed returns true if the CPU has stopped.
func (nes *NES) Jammed() bool {
	return nes.jammed
}

// Stats returns the statistics so far.
func (nes *NES) Stats() Stats {
	s := nes.stats
	s.Translator = nes.translator.Stats()
	return s
}

// Units returns every unit translated so far.
func (nes *NES) Units() []translator.Unit {
	return nes.units
}

// VariableAddress implements the translator.Runtime interface.
func (nes *NES) VariableAddress(v host.Variable) uint32 {
	return host.VariableAddress(v)
}

// SlotAddress implements the translator.Runtime interface.
func (nes *NES) SlotAddress(addr uint16) uint32 {
	return host.SlotAddress(addr)
}

// Record implements the translator.Runtime interface.
func (nes *NES) Record(u translator.Unit) {
	nes.units = append(nes.units, u)
	nes.index[u.Physical] = uint32(len(nes.units))
	nes.ctx.setSlot(u.Origin, u.Offset)
}

func (nes *NES) fault(f translator.Fault) {
	if nes.OnFault != nil {
		nes.OnFault(f)
	}
}

// remap empties the dispatch table slots for the windows that have changed.
// the units themselves remain in the physical index.
//
// the last instruction of a unit can take its operand from the following
// window so the slots of the window before the first changed window are also
// emptied.
func (nes *NES) remap(first int, count int) {
	if first > 0 {
		first--
		count++
	}
	nes.ctx.clearSlots(first<<addrspace.PageShift, count<<addrspace.PageShift)
}

// unit returns the arena offset of the unit for the source address. the
// address is translated if necessary.
func (nes *NES) unit(addr uint16) (int, error) {
	if s := nes.ctx.slot(addr); s != 0 {
		return int(s - 1), nil
	}

	// a unit for the same physical location is only reused if it was
	// translated at the same logical address
	if id := nes.index[nes.Space.Physical(addr)]; id != 0 {
		u := nes.units[id-1]
		if u.Origin == addr && !crossesWindow(u) {
			nes.ctx.setSlot(addr, u.Offset)
			nes.stats.Relinks++
			return u.Offset, nil
		}
	}

	u, err := nes.translator.Translate(addr)
	if err != nil {
		return 0, err
	}

	return u.Offset, nil
}

// crossesWindow is true if the source of the unit extends into the next
// window. the physical index only identifies the window of the origin.
func crossesWindow(u translator.Unit) bool {
	return int(u.Origin&(addrspace.PageSize-1))+u.SourceLength > addrspace.PageSize
}

// Disassemble writes the host code of every unit to w.
func (nes *NES) Disassemble(w io.Writer) error {
	code := nes.code.Bytes()
	for _, u := range nes.units {
		fmt.Fprintf(w, "%#04x (physical %#x) %d source bytes\n", u.Origin, u.Physical, u.SourceLength)
		if err := host.Disassemble(w, code[u.Offset:u.Offset+u.Size]); err != nil {
			return err
		}
	}
	return nil
}
