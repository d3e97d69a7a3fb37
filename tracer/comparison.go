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

package tracer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/logger"
)

// Sentinal errors returned by Comparison.Err().
const (
	DivergenceError = "tracer: divergence at line %d: expected %s got %s"
	ReferenceError  = "tracer: reference line %d: %v"
	ExhaustedError  = "tracer: reference trace ended after %d lines"
)

var referencePattern = regexp.MustCompile(
	`^([0-9A-Fa-f]{4})\s.*A:([0-9A-Fa-f]{2}) X:([0-9A-Fa-f]{2}) Y:([0-9A-Fa-f]{2}) P:([0-9A-Fa-f]{2}) SP:([0-9A-Fa-f]{2})(?:.*CYC:\s*(\d+))?`)

// reference is a single parsed line of the reference trace.
type reference struct {
	state     execution.State
	cycles    int
	hasCycles bool
}

func (ref reference) String() string {
	if ref.hasCycles {
		return fmt.Sprintf("%04X %s CYC:%d", ref.state.PC, ref.state, ref.cycles)
	}
	return fmt.Sprintf("%04X %s", ref.state.PC, ref.state)
}

func parseReference(line string) (reference, error) {
	m := referencePattern.FindStringSubmatch(line)
	if m == nil {
		return reference{}, curated.Errorf("unrecognised format")
	}

	hex := func(s string) uint64 {
		v, _ := strconv.ParseUint(s, 16, 16)
		return v
	}

	ref := reference{
		state: execution.State{
			PC: uint16(hex(m[1])),
			A:  uint8(hex(m[2])),
			X:  uint8(hex(m[3])),
			Y:  uint8(hex(m[4])),
			P:  uint8(hex(m[5])),
			SP: uint8(hex(m[6])),
		},
	}

	if m[7] != "" {
		c, err := strconv.Atoi(m[7])
		if err != nil {
			return reference{}, err
		}
		ref.cycles = c
		ref.hasCycles = true
	}

	return ref, nil
}

// Comparison checks observed instructions against a reference trace.
type Comparison struct {
	scanner *bufio.Scanner
	line    int
	cycles  int
	err     error
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The cycles argument is the cycle count at the time of the first
// instruction.
func NewComparison(ref io.Reader, cycles int) *Comparison {
	return &Comparison{
		scanner: bufio.NewScanner(ref),
		cycles:  cycles,
	}
}

// next non-empty line of the reference
func (cmp *Comparison) next() (string, bool) {
	for cmp.scanner.Scan() {
		cmp.line++
		if s := cmp.scanner.Text(); s != "" {
			return s, true
		}
	}
	return "", false
}

// Observe implements the cpu.Observer interface. Once a divergence has been
// found no more comparisons are made.
func (cmp *Comparison) Observe(result execution.Result) {
	if cmp.err != nil {
		return
	}

	cycles := cmp.cycles
	cmp.cycles += result.Cycles

	s, ok := cmp.next()
	if !ok {
		if err := cmp.scanner.Err(); err != nil {
			cmp.err = curated.Errorf(ReferenceError, cmp.line, err)
		} else {
			cmp.err = curated.Errorf(ExhaustedError, cmp.line)
		}
		return
	}

	ref, err := parseReference(s)
	if err != nil {
		cmp.err = curated.Errorf(ReferenceError, cmp.line, err)
		return
	}

	got := reference{
		state:     result.Before,
		hasCycles: ref.hasCycles,
	}
	got.state.PC = result.Address
	if got.hasCycles {
		got.cycles = cycles
	}

	if got != ref {
		cmp.err = curated.Errorf(DivergenceError, cmp.line, ref, got)
		logger.Logf(logger.Allow, "tracer", "divergence after %s", result)
	}
}

// Err returns the first divergence from the reference trace.
func (cmp *Comparison) Err() error {
	return cmp.err
}

// Lines returns the number of reference lines consumed.
func (cmp *Comparison) Lines() int {
	return cmp.line
}

// Exhausted returns true if the reference trace ran out of lines.
func (cmp *Comparison) Exhausted() bool {
	return curated.Is(cmp.err, ExhaustedError)
}
