// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is used when referring to the program in output and in
// the names of generated files.
const ApplicationName = "gopher2a03"

// number is set at link time by release builds
var number string

// Info describes the build of the running program.
type Info struct {
	// the release number, "unreleased" if built from a VCS checkout without a
	// release number, or "local" if there is no VCS information at all
	Number string

	// VCS revision. suffixed with "+dirty" if the working tree had
	// uncommitted changes
	Revision string

	// true if Number was supplied at link time
	Release bool
}

var build = sync.OnceValue(func() Info {
	info := Info{
		Number:  number,
		Release: number != "",
	}

	var vcs, dirty bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				info.Revision = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
	}

	switch {
	case info.Revision == "":
		info.Revision = "no revision information"
	case dirty:
		info.Revision += "+dirty"
	}

	if !info.Release {
		if vcs {
			info.Number = "unreleased"
		} else {
			info.Number = "local"
		}
	}

	return info
})

// Build returns information about the running program.
func Build() Info {
	return build()
}

// Version returns the version number, the revision and whether the build is
// a numbered release.
func Version() (string, string, bool) {
	b := build()
	return b.Number, b.Revision, b.Release
}

// String returns the application name and version in a single line. The
// revision is only included for non-release builds.
func String() string {
	b := build()
	if b.Release {
		return fmt.Sprintf("%s %s", ApplicationName, b.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, b.Number, b.Revision)
}
