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

package performance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestParseProfile(t *testing.T) {
	p, err := ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = CalcFPS(10, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestCalcClock(t *testing.T) {
	mhz, accuracy := CalcClock(1789773, 1.0)
	test.ExpectSuccess(t, mhz > 1.7897 && mhz < 1.7898)
	test.ExpectSuccess(t, accuracy > 99.99 && accuracy < 100.01)

	mhz, accuracy = CalcClock(100, -1)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	sentinal := errors.New("sentinal")
	err := RunProfiler(ProfileNone, "unused", func() error { return sentinal })
	test.ExpectEquality(t, err, sentinal)

	header := filepath.Join(t.TempDir(), "test")
	err = RunProfiler(ProfileMem, header, func() error { return nil })
	test.ExpectSuccess(t, err)

	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestMeasure(t *testing.T) {
	nes, err := hardware.NewNES()
	test.DemandSuccess(t, err)
	defer nes.End()

	// JMP $C000
	var b memory.Bank
	copy(b[:], []uint8{0x4c, 0x00, 0xc0})
	b[0x3ffc] = 0x00
	b[0x3ffd] = 0xc0
	test.DemandSuccess(t, nes.Attach(b))

	m, err := measure(nes, ProfileNone, 10*time.Millisecond, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.frames > 0)
	test.ExpectSuccess(t, m.cycles > m.frames)
}
