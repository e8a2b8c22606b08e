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
// Package version reports the version of the program and the versions of
// the modules it was built with.
package version

import (
	"fmt"
	"io"
	"runtime/debug"
	"sort"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gophernes"

// number is set with the linker. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gophernes/version.number=v0.1.0"
var number string

var revision string
var version string

// the module dependencies in the build information
var deps []*debug.Module

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the program was built from a
// repository without a version number and "local" if there is no version
// control information.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Write the version information and the module dependencies to the
// io.Writer.
func Write(w io.Writer) {
	fmt.Fprintf(w, "%s %s (%s)\n", ApplicationName, version, revision)
	for _, d := range deps {
		fmt.Fprintf(w, "  %s %s\n", d.Path, d.Version)
	}
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}

		deps = append(deps, info.Deps...)
		sort.Slice(deps, func(i, j int) bool {
			return deps[i].Path < deps[j].Path
		})
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
