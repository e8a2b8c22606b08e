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
package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/memory/addrspace"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/test"
)

// banked returns data where every byte of a bank holds the bank number.
func banked(banks int, size int) []uint8 {
	d := make([]uint8, banks*size)
	for i := range d {
		d[i] = uint8(i / size)
	}
	return d
}

func attach(t *testing.T, prg []uint8, chr []uint8, id int) (*cartridge.Cartridge, *addrspace.Space) {
	t.Helper()

	cart, err := cartridge.NewCartridge(prg, chr)
	test.ExpectedSuccess(t, err)

	m, err := cartridge.NewRegistry().Create(id)
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.ID(), id)

	space := addrspace.NewSpace(cart.PRG, memorymap.RAMSize, memorymap.SRAMSize)
	test.ExpectedSuccess(t, cart.Attach(space, m))

	return cart, space
}

// stub maps the 16KB bank number written to it at 0x8000.
type stub struct {
	bus mapper.Bus
}

func (s *stub) ID() int      { return 255 }
func (s *stub) Name() string { return "stub" }

func (s *stub) Init(bus mapper.Bus) error {
	s.bus = bus
	return s.bus.MapPRG(8, 0, 0x4000)
}

func (s *stub) OnWrite(_ uint16, data uint8) error {
	return s.bus.MapPRG(8, int(data)*0x4000, 0x4000)
}

func TestSequentialBankSwitch(t *testing.T) {
	prg := banked(4, 0x4000)
	cart, err := cartridge.NewCartridge(prg, nil)
	test.ExpectedSuccess(t, err)

	space := addrspace.NewSpace(cart.PRG, memorymap.RAMSize, memorymap.SRAMSize)

	m := &stub{}
	test.ExpectedSuccess(t, cart.Attach(space, m))
	test.ExpectedSuccess(t, cart.Write(0x8000, 0))
	test.Equate(t, space.Read(0x8000), 0x00)

	test.ExpectedSuccess(t, m.Init(cart))
	test.ExpectedSuccess(t, cart.Write(0x8000, 1))
	for _, a := range []uint16{0x8000, 0x9234, 0xbfff} {
		test.Equate(t, space.Read(a), 0x01)
	}
}

// failing maps an impossible range during initialisation.
type failing struct{ stub }

func (f *failing) Init(bus mapper.Bus) error {
	return bus.MapPRG(8, 0x1000, 0x800)
}

func TestAttachFailure(t *testing.T) {
	cart, err := cartridge.NewCartridge(banked(2, 0x4000), nil)
	test.ExpectedSuccess(t, err)
	space := addrspace.NewSpace(cart.PRG, memorymap.RAMSize, memorymap.SRAMSize)

	err = cart.Attach(space, &failing{})
	test.ExpectedSuccess(t, curated.Is(err, cartridge.AttachFailed))
	test.ExpectedSuccess(t, curated.Has(err, addrspace.MisalignedRange))
	test.ExpectedSuccess(t, cart.Mapper() == nil)

	err = cart.Write(0x8000, 0x00)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.NotAttached))
}

func TestNewCartridge(t *testing.T) {
	_, err := cartridge.NewCartridge(nil, nil)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidPRG))

	_, err = cartridge.NewCartridge(make([]uint8, 0x3000), nil)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidPRG))

	_, err = cartridge.NewCartridge(make([]uint8, 0x4000), make([]uint8, 0x100))
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidCHR))

	a, _ := cartridge.NewCartridge(make([]uint8, 0x4000), nil)
	b, _ := cartridge.NewCartridge(make([]uint8, 0x4000), nil)
	test.Equate(t, a.Hash, b.Hash)
	test.ExpectedSuccess(t, a.HasCHRRAM())
}

func TestRegistry(t *testing.T) {
	r := cartridge.NewRegistry()

	ids := r.Supported()
	test.Equate(t, len(ids), 6)
	test.Equate(t, ids[0], 0)
	test.Equate(t, ids[5], 7)

	_, err := r.Create(5)
	test.ExpectedSuccess(t, curated.Is(err, cartridge.UnsupportedMapper))

	for _, id := range ids {
		m, err := r.Create(id)
		test.ExpectedSuccess(t, err)
		test.Equate(t, m.ID(), id)
	}
}

func TestNROM(t *testing.T) {
	// 16KB is mirrored
	cart, space := attach(t, banked(1, 0x4000), banked(1, 0x2000), 0)
	test.Equate(t, space.Physical(0x8123), space.Physical(0xc123))
	test.Equate(t, cart.Mirroring.String(), "horizontal")

	// 32KB fills cartridge space
	_, space = attach(t, banked(2, 0x4000), nil, 0)
	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, space.Read(0xc000), 0x01)

	// writes have no effect
	test.ExpectedFailure(t, space.Write(0x8000, 0x01))
	test.Equate(t, space.Read(0x8000), 0x00)
}

func TestUxROM(t *testing.T) {
	cart, space := attach(t, banked(8, 0x4000), nil, 2)
	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, space.Read(0xc000), 0x07)

	test.ExpectedSuccess(t, cart.Write(0x8000, 3))
	test.Equate(t, space.Read(0x8000), 0x03)
	test.Equate(t, space.Read(0xffff), 0x07)

	// bank numbers wrap
	test.ExpectedSuccess(t, cart.Write(0xffff, 9))
	test.Equate(t, space.Read(0xbfff), 0x01)
}

func TestCNROM(t *testing.T) {
	cart, space := attach(t, banked(2, 0x4000), banked(4, 0x2000), 3)
	test.Equate(t, cart.Pattern[0], 0x00)
	test.Equate(t, space.Read(0xc000), 0x01)

	test.ExpectedSuccess(t, cart.Write(0x8000, 2))
	test.Equate(t, cart.Pattern[0], 0x02)
	test.Equate(t, cart.Pattern[cartridge.PatternSize-1], 0x02)
}

func TestAxROM(t *testing.T) {
	cart, space := attach(t, banked(4, 0x8000), nil, 7)
	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, cart.Mirroring.String(), "single lower")

	test.ExpectedSuccess(t, cart.Write(0x8000, 0x12))
	test.Equate(t, space.Read(0x8000), 0x02)
	test.Equate(t, space.Read(0xffff), 0x02)
	test.Equate(t, cart.Mirroring.String(), "single upper")
}

// serial writes a value to the MMC1 shift register.
func serial(t *testing.T, cart *cartridge.Cartridge, addr uint16, v uint8) {
	t.Helper()
	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, cart.Write(addr, v&0x01))
		v >>= 1
	}
}

func TestMMC1(t *testing.T) {
	cart, space := attach(t, banked(8, 0x4000), banked(4, 0x1000), 1)

	// last bank is fixed at 0xc000 on power on
	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, space.Read(0xc000), 0x07)

	serial(t, cart, 0xe000, 0x05)
	test.Equate(t, space.Read(0x8000), 0x05)
	test.Equate(t, space.Read(0xc000), 0x07)

	// an incomplete sequence followed by a reset changes nothing
	test.ExpectedSuccess(t, cart.Write(0xe000, 0x00))
	test.ExpectedSuccess(t, cart.Write(0xe000, 0x80))
	test.Equate(t, space.Read(0x8000), 0x05)

	// fix first bank at 0x8000, vertical mirroring and 4KB CHR banks
	serial(t, cart, 0x8000, 0x1a)
	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, space.Read(0xc000), 0x05)
	test.Equate(t, cart.Mirroring.String(), "vertical")

	serial(t, cart, 0xa000, 0x02)
	serial(t, cart, 0xc000, 0x03)
	test.Equate(t, cart.Pattern[0x0000], 0x02)
	test.Equate(t, cart.Pattern[0x1000], 0x03)

	// 32KB mode ignores the low bit of the bank number
	serial(t, cart, 0x8000, 0x00)
	serial(t, cart, 0xe000, 0x03)
	test.Equate(t, space.Read(0x8000), 0x02)
	test.Equate(t, space.Read(0xc000), 0x03)
	test.Equate(t, cart.Mirroring.String(), "single lower")

	// SRAM disable
	test.ExpectedSuccess(t, space.Write(0x6000, 0x42))
	serial(t, cart, 0xe000, 0x10)
	test.Equate(t, space.Read(0x6000), addrspace.OpenBus)
}

func TestMMC3(t *testing.T) {
	cart, space := attach(t, banked(16, 0x2000), banked(16, 0x0400), 4)

	test.Equate(t, space.Read(0x8000), 0x00)
	test.Equate(t, space.Read(0xa000), 0x01)
	test.Equate(t, space.Read(0xc000), 0x0e)
	test.Equate(t, space.Read(0xe000), 0x0f)

	// R6 = 5 and R7 = 9
	test.ExpectedSuccess(t, cart.Write(0x8000, 0x06))
	test.ExpectedSuccess(t, cart.Write(0x8001, 0x05))
	test.ExpectedSuccess(t, cart.Write(0x8000, 0x07))
	test.ExpectedSuccess(t, cart.Write(0x8001, 0x09))
	test.Equate(t, space.Read(0x8000), 0x05)
	test.Equate(t, space.Read(0xa000), 0x09)

	// swap the 0x8000 and 0xc000 segments and invert CHR
	test.ExpectedSuccess(t, cart.Write(0x8000, 0xc0))
	test.Equate(t, space.Read(0x8000), 0x0e)
	test.Equate(t, space.Read(0xc000), 0x05)
	test.Equate(t, space.Read(0xe000), 0x0f)
	test.Equate(t, cart.Pattern[0x0000], 0x04)
	test.Equate(t, cart.Pattern[0x1000], 0x00)

	test.ExpectedSuccess(t, cart.Write(0xa000, 0x01))
	test.Equate(t, cart.Mirroring.String(), "horizontal")

	// IRQ after latch+1 scanlines
	test.ExpectedSuccess(t, cart.Write(0xc000, 0x02))
	test.ExpectedSuccess(t, cart.Write(0xc001, 0x00))
	test.ExpectedSuccess(t, cart.Write(0xe001, 0x00))
	test.ExpectedFailure(t, cart.Scanline())
	test.ExpectedFailure(t, cart.Scanline())
	test.ExpectedSuccess(t, cart.Scanline())

	// disabled IRQ counts but does not assert
	test.ExpectedSuccess(t, cart.Write(0xe000, 0x00))
	for i := 0; i < 6; i++ {
		test.ExpectedFailure(t, cart.Scanline())
	}
}

func TestINES(t *testing.T) {
	hdr := []uint8{'N', 'E', 'S', 0x1a, 2, 1, 0x41, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(hdr, banked(2, 0x4000)...)
	data = append(data, banked(1, 0x2000)...)

	cart, err := cartridge.ParseINES(data)
	test.ExpectedSuccess(t, err)
	test.Equate(t, cart.MapperID, 4)
	test.Equate(t, len(cart.PRG), 0x8000)
	test.Equate(t, len(cart.CHR), 0x2000)
	test.Equate(t, cart.Mirroring.String(), "vertical")

	_, err = cartridge.ParseINES(data[:0x100])
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidINES))

	_, err = cartridge.ParseINES([]uint8{1, 2, 3})
	test.ExpectedSuccess(t, curated.Is(err, cartridge.InvalidINES))
	test.ExpectedFailure(t, cartridge.IsINES([]uint8{1, 2, 3}))
}
