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

package disassembly

import (
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// Peeker is implemented by memory that can be read without side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Decode the instruction at the address. The operand bytes wrap around the
// top of the address space.
func Decode(mem Peeker, address uint16) (Entry, error) {
	defs, err := instructions.GetDefinitions()
	if err != nil {
		return Entry{}, curated.Errorf("disassembly: %v", err)
	}

	opcode := mem.Peek(address)
	e := Entry{
		Result: execution.Result{
			Address:   address,
			ByteCount: 1,
		},
	}

	defn := defs[opcode]
	if defn == nil {
		e.Level = EntryLevelUnknown
		e.Result.InstructionData = uint16(opcode)
		return e, nil
	}

	e.Level = EntryLevelDecoded
	e.Result.Defn = defn
	e.Result.ByteCount = defn.Bytes
	e.Result.Cycles = defn.Cycles

	switch defn.Bytes {
	case 2:
		e.Result.InstructionData = uint16(mem.Peek(address + 1))
	case 3:
		e.Result.InstructionData = uint16(mem.Peek(address+1)) | uint16(mem.Peek(address+2))<<8
	}

	return e, nil
}

// MaxLinear is the largest number of instructions Linear() will decode. No
// more than this are needed to cover the entire address space.
const MaxLinear = 0x10000

// Linear decodes count instructions starting from the address, each
// instruction starting at the byte following the previous one. The count is
// limited to MaxLinear.
func Linear(mem Peeker, address uint16, count int) ([]Entry, error) {
	count = min(max(count, 0), MaxLinear)
	entries := make([]Entry, 0, count)
	for range count {
		e, err := Decode(mem, address)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		address = e.Next()
	}
	return entries, nil
}
