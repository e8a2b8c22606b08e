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
package statsview

import (
	"net"
	"strconv"

	"github.com/jetsetilly/gophernes/curated"
)

// DefaultAddress is used when Launch() is given an empty address.
const DefaultAddress = "localhost:12600"

// BadAddress is returned by Launch() if the address cannot be listened on.
const BadAddress = "statsview: bad address (%s)"

// path of the statistics page on the server.
const path = "/debug/statsview"

// Resolve normalises a server address. A missing host is taken to be
// localhost.
func Resolve(addr string) (string, error) {
	if addr == "" {
		return DefaultAddress, nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", curated.Errorf(BadAddress, addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", curated.Errorf(BadAddress, addr)
	}

	if host == "" {
		host = "localhost"
	}

	return net.JoinHostPort(host, port), nil
}
