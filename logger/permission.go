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
package logger

// Permission is consulted by Log() and Logf() before an entry is added.
type Permission interface {
	AllowLogging() bool
}

type allow bool

func (a allow) AllowLogging() bool {
	return bool(a)
}

// Allow and Deny are the fixed permissions.
var (
	Allow Permission = allow(true)
	Deny  Permission = allow(false)
)

// Latch hands out permission for one entry per key. Diagnostics that can
// repeat for every byte of a ROM use it so that the log records each kind of
// problem once. The zero value is ready to use.
type Latch struct {
	seen [256]bool
}

// Permit returns Allow the first time the key is seen and Deny after that.
func (l *Latch) Permit(key uint8) Permission {
	if l.seen[key] {
		return Deny
	}
	l.seen[key] = true
	return Allow
}

// Reset forgets every key.
func (l *Latch) Reset() {
	clear(l.seen[:])
}
