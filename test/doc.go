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
// Package test contains helper functions to remove common boilerplate from
// the tests of the other Gophernes packages.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. A nil value is considered a success,
// because of how errors work in Go (nil indicating no error).
// ExpectedError checks that an error carries a particular curated sentinel.
//
// The Equate() function compares like-typed variables for equality. Unsigned
// register sized types (uint8, uint16, uint32) can be compared against an int
// literal for convenience.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
