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
	"strings"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Bytes returns the bytes of the instruction as a string of hex values. For
// example, "A9 05".
func (r Result) Bytes() string {
	if r.Defn == nil {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02X", r.Defn.OpCode))
	if r.ByteCount > 1 {
		s.WriteString(fmt.Sprintf(" %02X", uint8(r.InstructionData)))
	}
	if r.ByteCount > 2 {
		s.WriteString(fmt.Sprintf(" %02X", uint8(r.InstructionData>>8)))
	}
	return s.String()
}

// Operand returns the operand of the instruction decorated according to the
// addressing mode. Branch operands are shown as the destination address.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", r.InstructionData)
	case instructions.Relative:
		dest := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04X", dest)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", r.InstructionData)
	}

	return ""
}

// String returns the instruction in assembler form. For example, "LDA #$05".
func (r Result) String() string {
	if r.Defn == nil {
		return "unknown instruction"
	}
	if operand := r.Operand(); operand != "" {
		return fmt.Sprintf("%s %s", r.Defn.Mnemonic, operand)
	}
	return r.Defn.Mnemonic
}
