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
//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gophernes/logger"
)

// Launch starts the server in its own goroutine. The server lives for the
// rest of the process.
func Launch(output io.Writer, addr string) error {
	addr, err := Resolve(addr)
	if err != nil {
		return err
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "listening on %s", addr)
	fmt.Fprintf(output, "runtime statistics at http://%s%s\n", addr, path)

	return nil
}

// Available is true because the package was built with the statsview tag.
func Available() bool {
	return true
}
