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
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
	"github.com/jetsetilly/gophernes/logger"
)

// Jammed is returned by the run functions when the CPU has stopped. The CPU
// stops on one of the KIL opcodes or on a byte that could not be
// translated.
const Jammed = "nes: CPU jammed at %#04x"

// The continueCheck() function passed to Run() is called at the end of
// every scanline. That is often enough that an expensive check can slow the
// emulation noticeably.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For
// example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every scanline and the emulation stops
// when it returns false or an error.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := nes.scanline(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunFrame runs the emulation until the start of the next vertical blank.
func (nes *NES) RunFrame() error {
	frame := nes.timing.frame
	for frame == nes.timing.frame {
		if err := nes.scanline(); err != nil {
			return err
		}
	}
	return nil
}

// RunCycles runs the emulation for at least the number of CPU cycles.
// Execution stops at the end of a scanline so the number of cycles run may
// be more than requested.
func (nes *NES) RunCycles(n int) error {
	target := nes.stats.Cycles + int64(n)
	for nes.stats.Cycles < target {
		if err := nes.scanline(); err != nil {
			return err
		}
	}
	return nil
}

// scanline executes until the cycle budget for the scanline is spent.
func (nes *NES) scanline() error {
	if nes.jammed {
		return curated.Errorf(Jammed, nes.ctx.PC)
	}

	nes.ctx.Spend(-CyclesPerScanline)
	start := nes.ctx.Cycles()

	for nes.ctx.Cycles() > 0 {
		nes.interrupt()

		offset, err := nes.unit(nes.ctx.PC)
		if err != nil {
			return err
		}
		nes.ctx.Cursor = offset

		nes.state = Running
		target, reason := nes.execute(offset)
		nes.state = Servicing

		nes.ctx.PC = target
		nes.stats.Exits++

		switch reason {
		case exitJam:
			nes.jammed = true
			logger.Logf(logger.Allow, "nes", "CPU jammed at %#04x", target)
			return curated.Errorf(Jammed, target)
		case exitError:
			err := nes.err
			nes.err = nil
			return err
		}
	}

	nes.stats.Cycles += int64(start - nes.ctx.Cycles())
	nes.endScanline()

	return nil
}

// interrupt services the highest priority pending interrupt, if the CPU
// will respond to it.
func (nes *NES) interrupt() {
	p := nes.ctx.Pending()
	switch {
	case p&host.PendingNMI == host.PendingNMI:
		nes.ctx.Acknowledge(host.PendingNMI)
		nes.service(memorymap.NMIVector)
	case p&host.PendingIRQ == host.PendingIRQ && !nes.CPU.Status.InterruptDisable:
		nes.ctx.Acknowledge(host.PendingIRQ)
		nes.service(memorymap.IRQVector)
	}
}

// service pushes the program counter and status register and jumps through
// the vector. the break flag is clear in the pushed status register.
func (nes *NES) service(vector uint16) {
	pc := nes.ctx.PC
	nes.push(uint8(pc >> 8))
	nes.push(uint8(pc))
	nes.push(nes.CPU.Status.Value() &^ registers.BreakBit)
	nes.CPU.Status.InterruptDisable = true
	nes.ctx.PC = nes.read16(vector)
	nes.ctx.Spend(InterruptCycles)
	nes.stats.Interrupts++
}
