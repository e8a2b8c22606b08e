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
// Package modalflag handles command line arguments that are divided into
// modes. A mode is a bare word that selects a set of flags. For example:
//
//	gophernes COMPILE -o nes.dict nes6502.rules
//	gophernes RUN -frames 60 game.prg
//
// Each mode is parsed in turn. After NewArgs() the top level is parsed with
// a list of available sub-modes. The selected mode is returned by Mode(). The
// arguments for the mode are then parsed after a call to NewMode() and the
// addition of the flags for that mode.
//
// If no sub-mode is recognised on the command line, the first sub-mode in
// the list is used as the default.
package modalflag
