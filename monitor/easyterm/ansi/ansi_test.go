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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/monitor/easyterm/ansi"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("red", "blue", "bold", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;44;1m")

	s, err = ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")
	test.ExpectEquality(t, ansi.NormalPen, s)

	_, err = ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectFailure(t, err)

	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectFailure(t, err)
}
