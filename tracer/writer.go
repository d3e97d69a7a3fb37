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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// Line formats an execution result as a single trace line. The cycles
// argument is the number of cycles elapsed before the instruction.
func Line(result execution.Result, cycles int) string {
	mark := " "
	if result.Defn != nil && result.Defn.Undocumented {
		mark = "*"
	}
	return fmt.Sprintf("%04X  %-8s %s%-31s %s CYC:%d",
		result.Address, result.Bytes(), mark, result.String(), result.Before, cycles)
}

// Writer writes a trace line for every instruction it observes.
type Writer struct {
	output io.Writer
	cycles int
	err    error
}

// NewWriter is the preferred method of initialisation for the Writer type.
// The cycles argument is the cycle count at the time of the first
// instruction.
func NewWriter(output io.Writer, cycles int) *Writer {
	return &Writer{
		output: output,
		cycles: cycles,
	}
}

// Observe implements the cpu.Observer interface.
func (tw *Writer) Observe(result execution.Result) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintln(tw.output, Line(result, tw.cycles))
	tw.cycles += result.Cycles
}

// Err returns the first error encountered when writing to the output.
func (tw *Writer) Err() error {
	return tw.err
}
