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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/monitor/easyterm/ansi"
	"github.com/jetsetilly/gopher2a03/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	var echo test.CompareWriter

	log.SetEcho(&echo)
	log.Logf(logger.Allow, "nes", "reset vector %#04x", 0xc000)
	test.ExpectEquality(t, echo.String(), "nes: reset vector 0xc000\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "nes", "not echoed")
	test.ExpectEquality(t, echo.String(), "nes: reset vector 0xc000\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestPermissionFunc(t *testing.T) {
	log := logger.NewLogger(100)

	log.Log(logger.Deny, "tag", "denied")
	test.ExpectEquality(t, log.Len(), 0)

	quiet := true
	perm := logger.PermissionFunc(func() bool { return !quiet })
	log.Log(perm, "tag", "quiet")
	test.ExpectEquality(t, log.Len(), 0)

	quiet = false
	log.Log(perm, "tag", "not quiet")
	log.Log(perm, "tag", "not quiet")
	test.ExpectEquality(t, log.Len(), 1)
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", curated.Errorf("curated %d", 10))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: curated 10\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for unsupported types, the Log() function will use the %v verb
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestColorizer(t *testing.T) {
	var w test.CompareWriter
	c := logger.NewColorizer(&w)

	c.Write([]byte("no tag here\n"))
	test.ExpectEquality(t, w.String(), "no tag here\n")

	w.Clear()
	c.Write([]byte("cpu: halted\n"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "cpu"))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), ": halted\n"))
}

func TestColorizerErrors(t *testing.T) {
	var w test.CompareWriter
	c := logger.NewColorizer(&w)

	n, err := c.Write([]byte("cartridge: Error loading file\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 30)
	test.ExpectSuccess(t, strings.Contains(w.String(), ansi.Pens["red"]+"Error loading file"+ansi.NormalPen))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "\n"))
}
