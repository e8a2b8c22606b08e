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
// Package scripthook allows a Lua script to act as an I/O collaborator for
// the NES. The script is attached to the expansion area ($4020 to $5FFF)
// and is called for every read and write of an address in that range.
//
// The script must define a global function called access:
//
//	function access(addr, value, write)
//		if write then
//			log(string.format("write %04x = %02x", addr, value))
//			return 0
//		end
//		return peek(0x0000)
//	end
//
// For reads, the value returned by access is the value read by the CPU.
// Non-numeric return values are read as open bus ($FF).
//
// An optional global function called frame is called with the frame number
// by EndFrame().
//
// The following functions are made available to the script:
//
//	peek(addr)	returns the value at the address without side effects
//	log(msg)	writes the message to the central logger with the "script" tag
//
// Errors raised by the script during emulation cannot be returned to the
// CPU. The first such error is logged and is available from Err(). Access()
// is not called again after an error.
package scripthook
