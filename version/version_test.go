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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
	"github.com/jetsetilly/gopher2a03/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")

	s := version.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, version.ApplicationName))
	if !release {
		test.ExpectSuccess(t, strings.Contains(s, r))
	}
}

func TestBuild(t *testing.T) {
	b := version.Build()
	v, r, release := version.Version()
	test.ExpectEquality(t, b.Number, v)
	test.ExpectEquality(t, b.Revision, r)
	test.ExpectEquality(t, b.Release, release)

	// not built with a linker supplied version number
	test.ExpectEquality(t, b.Release, false)
}
