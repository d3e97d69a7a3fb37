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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/test"
)

func result(t *testing.T, opcode uint8, data uint16) execution.Result {
	t.Helper()
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)
	defn := defs[opcode]
	test.DemandEquality(t, defn != nil, true)
	return execution.Result{
		Address:         0xc000,
		Defn:            defn,
		InstructionData: data,
		ByteCount:       defn.Bytes,
		Cycles:          defn.Cycles,
		Final:           true,
	}
}

func TestDisassembly(t *testing.T) {
	r := result(t, 0xa9, 0x05)
	test.ExpectEquality(t, r.String(), "LDA #$05")
	test.ExpectEquality(t, r.Bytes(), "A9 05")

	r = result(t, 0x4c, 0xc5f5)
	test.ExpectEquality(t, r.String(), "JMP $C5F5")
	test.ExpectEquality(t, r.Bytes(), "4C F5 C5")

	r = result(t, 0x6c, 0x02ff)
	test.ExpectEquality(t, r.String(), "JMP ($02FF)")

	r = result(t, 0xa1, 0x80)
	test.ExpectEquality(t, r.String(), "LDA ($80,X)")

	r = result(t, 0xb1, 0x80)
	test.ExpectEquality(t, r.String(), "LDA ($80),Y")

	r = result(t, 0xb6, 0x10)
	test.ExpectEquality(t, r.String(), "LDX $10,Y")

	r = result(t, 0x0a, 0)
	test.ExpectEquality(t, r.String(), "ASL A")
	test.ExpectEquality(t, r.Bytes(), "0A")

	r = result(t, 0x18, 0)
	test.ExpectEquality(t, r.String(), "CLC")

	// branch destinations are relative to the following instruction
	r = result(t, 0xd0, 0xfe)
	test.ExpectEquality(t, r.String(), "BNE $C000")
	r = result(t, 0xd0, 0x10)
	test.ExpectEquality(t, r.String(), "BNE $C012")

	var empty execution.Result
	test.ExpectEquality(t, empty.String(), "unknown instruction")
}

func TestValidity(t *testing.T) {
	r := result(t, 0xa9, 0x05)
	test.ExpectSuccess(t, r.IsValid())

	r.Final = false
	test.ExpectFailure(t, r.IsValid())

	// page faults on instructions that are not page sensitive
	r = result(t, 0x8d, 0x0200)
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())

	// page sensitive instruction with a page fault must have the extra cycle
	r = result(t, 0xbd, 0x02ff)
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles++
	test.ExpectSuccess(t, r.IsValid())

	// byte count mismatch
	r = result(t, 0xad, 0x0200)
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	// branches take an extra cycle when taken and another when the
	// destination is on a different page
	r = result(t, 0xd0, 0x10)
	test.ExpectEquality(t, r.ExpectedCycles(), 2)
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())

	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectEquality(t, r.ExpectedCycles(), 4)
	test.ExpectSuccess(t, r.IsValid())

	r.BranchSuccess = false
	test.ExpectFailure(t, r.IsValid())

	// only branches record a branch outcome
	r = result(t, 0xea, 0)
	r.BranchSuccess = true
	test.ExpectFailure(t, r.IsValid())
}

func TestState(t *testing.T) {
	s := execution.State{PC: 0xc000, A: 0x05, P: 0x24, SP: 0xfd}
	test.ExpectEquality(t, s.String(), "A:05 X:00 Y:00 P:24 SP:FD")
}
