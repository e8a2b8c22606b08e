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
// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The NES type is the root of the emulation. It owns the address space, the
// cartridge, the translator and the code arena. The 6502 program is never
// interpreted directly. Instead, source code is translated on demand into
// units of host code (see the dbt packages) and it is the host code that is
// executed.
//
// Execution alternates between the executor, which runs translated units,
// and the dispatcher, which runs everything else: translating addresses
// that have no unit, injecting interrupts and advancing the scanline
// timing. The executor returns to the dispatcher when control transfers to
// an address that has no unit in the dispatch table or when the cycle
// countdown in the execution Context has expired.
//
// Timing is heuristic. A scanline is a fixed budget of CPU cycles and a
// frame is a fixed number of scanlines. Memory mapped registers are handled
// by Hook implementations attached to address ranges. The video, audio and
// input collaborators are all attached in this way.
//
// The Run() function is the main entry point:
//
//	err := nes.Run(func() (bool, error) {
//		return !quit, nil
//	})
//
// RunFrame() and RunCycles() are useful for tests and for tools.
package hardware
