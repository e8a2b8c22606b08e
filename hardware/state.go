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

// State indicates whether the NES is executing translated code or whether
// the dispatcher is in control.
type State int

// List of valid State values.
const (
	Servicing State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Servicing:
		return "servicing"
	case Running:
		return "running"
	}
	return "unknown state"
}
