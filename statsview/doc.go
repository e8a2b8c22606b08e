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
// Package statsview is an optional package that is built only when the
// statsview build constraint is present:
//
//	go build -tags statsview
//
// It provides a HTTP server running locally offering runtime statistics of
// the emulation process. Underlying functionality provided by
// "github.com/go-echarts/statsview"
//
// The address is given to Launch(), with DefaultAddress used if it is empty.
// Graphical statistics are then at /debug/statsview on that address and the
// standard pprof pages at /debug/pprof/.
//
// Without the build constraint Available() returns false and Launch() only
// checks the address.
package statsview
