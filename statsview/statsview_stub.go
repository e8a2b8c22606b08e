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
//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch checks the address but starts nothing.
func Launch(output io.Writer, addr string) error {
	if _, err := Resolve(addr); err != nil {
		return err
	}
	fmt.Fprintln(output, "stats server not available (build with -tags statsview)")
	return nil
}

// Available is false without the statsview build tag.
func Available() bool {
	return false
}
