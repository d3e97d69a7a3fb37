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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlagsWithoutModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-realtime", "nestest.nes", "extra"})
	realtime := md.AddBool("realtime", false, "run at the speed of the real console")
	test.ExpectEquality(t, *realtime, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *realtime, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "nestest.nes")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("log", false, "echo log to stdout")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  -log\n    \techo log to stdout\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "trace")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n  available sub-modes: RUN, TRACE\n    default: RUN\n")
}

func TestAdditionalHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AdditionalHelp("the cartridge must be an iNES file")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n\nthe cartridge must be an iNES file\n")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"nestest.nes"})
	md.AddSubModes("RUN", "TRACE", "MONITOR")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "nestest.nes")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"trace", "-compare", "nestest.log", "nestest.nes"})
	md.AddSubModes("RUN", "TRACE", "MONITOR")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TRACE")

	md.NewMode()
	test.ExpectEquality(t, md.Parsed(), false)
	compare := md.AddString("compare", "", "reference trace")

	var visited []string
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Parsed(), true)
	test.ExpectEquality(t, *compare, "nestest.log")
	test.ExpectEquality(t, md.GetArg(0), "nestest.nes")

	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, len(visited), 1)
	test.ExpectEquality(t, visited[0], "compare")

	// the mode path is never reset by NewMode()
	test.ExpectEquality(t, md.Path(), "TRACE")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-steps", "many"})
	md.AddInt("steps", 0, "number of instructions")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestAddress(t *testing.T) {
	for _, s := range []string{"C000", "$C000", "0xc000", "$c000"} {
		md := modalflag.Modes{}
		md.NewArgs([]string{"-startpc", s})
		pc := md.AddAddress("startpc", "initial program counter")
		test.ExpectEquality(t, pc.Valid, false)

		p, err := md.Parse()
		test.ExpectEquality(t, p, modalflag.ParseContinue, s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, pc.Valid, true, s)
		test.ExpectEquality(t, pc.Value, uint16(0xc000), s)
		test.ExpectEquality(t, pc.String(), "$C000", s)
	}

	for _, s := range []string{"10000", "zz", ""} {
		md := modalflag.Modes{}
		md.NewArgs([]string{"-startpc", s})
		md.AddAddress("startpc", "initial program counter")

		p, err := md.Parse()
		test.ExpectEquality(t, p, modalflag.ParseError, s)
		test.ExpectFailure(t, err, s)
	}
}
