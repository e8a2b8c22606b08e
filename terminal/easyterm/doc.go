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
// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry and a channel of key presses, and wraps the termios
// functions in methods with friendlier names.
//
// The RUN mode uses the package to stop the emulation when a key is pressed:
//
//	var term easyterm.Terminal
//	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
//		return err
//	}
//	defer term.CleanUp()
//
//	term.CBreakMode()
//	keys := term.Keys()
//
// Terminal attributes that cannot be read or set (because the input file is
// not a terminal, for example) are ignored. The Terminal still works but key
// presses are delivered a line at a time.
package easyterm
