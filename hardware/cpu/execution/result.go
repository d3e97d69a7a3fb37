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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// State is a snapshot of the CPU registers.
type State struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	P  uint8
	SP uint8
}

func (s State) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", s.A, s.X, s.Y, s.P, s.SP)
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the actual number of cycles taken by the instruction
	Cycles int

	// the operand bytes of the instruction. one byte operands are in the low
	// byte. two byte operands are stored little-endian, so InstructionData is
	// the same as the address the operand represents
	InstructionData uint16

	// the number of bytes read during instruction decode, including the
	// opcode
	ByteCount int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched)
	BranchSuccess bool

	// the register state before and after the instruction was executed
	Before State
	After  State

	// whether the instruction was executed to completion
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
