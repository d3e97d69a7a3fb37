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

package instructions

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestParseErrors(t *testing.T) {
	_, err := parseDefinitions(strings.NewReader("0xa9, LDA, 2, IMMEDIATE, FALSE\n"))
	test.ExpectFailure(t, err)

	_, err = parseDefinitions(strings.NewReader("0xa9, LDA, 2, SIDEWAYS, FALSE, READ\n"))
	test.ExpectFailure(t, err)

	_, err = parseDefinitions(strings.NewReader("0xa9, LDA, two, IMMEDIATE, FALSE, READ\n"))
	test.ExpectFailure(t, err)

	_, err = parseDefinitions(strings.NewReader("0xa9, LDA, 2, IMMEDIATE, FALSE, READ\n0xa9, LDA, 2, IMMEDIATE, FALSE, READ\n"))
	test.ExpectFailure(t, err)

	_, err = parseDefinitions(strings.NewReader("0xa9, LDA, 2, IMMEDIATE, FALSE, READ, ILLEGAL\n"))
	test.ExpectFailure(t, err)

	table, err := parseDefinitions(strings.NewReader("# comment\n0xa9, LDA, 2, IMMEDIATE, FALSE, READ\n"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, table[0xa9] != nil, true)
	test.ExpectEquality(t, table[0xa9].Bytes, 2)
	test.ExpectEquality(t, table[0xa8] == nil, true)
}
