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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher2a03/test"
)

func TestSuccessAndFailure(t *testing.T) {
	var nilError error

	successes := []any{true, nilError, nil}
	for i, v := range successes {
		test.ExpectSuccess(t, v, "success", i)
		test.DemandSuccess(t, v, "success", i)
	}

	failures := []any{false, errors.New("failure")}
	for i, v := range failures {
		test.ExpectFailure(t, v, "failure", i)
		test.DemandFailure(t, v, "failure", i)
	}
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 0x10, 0x08<<1)
	test.DemandEquality(t, "nes", "n"+"es")
	test.ExpectEquality(t, uint16(0xfffc), 0xfffc)
	test.ExpectInequality(t, uint8(0xff), 0x00)
	test.ExpectInequality(t, "2A03", "6502")
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}

	n, err := w.Write([]byte("LDA "))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	_, _ = w.Write([]byte("#$01"))

	test.ExpectSuccess(t, w.Compare("LDA #$01"))
	test.ExpectFailure(t, w.Compare("LDA #$02"))

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
}
