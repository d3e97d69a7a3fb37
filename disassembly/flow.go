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
	"slices"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// Flow disassembles the program by following the flow of instructions from
// the start addresses. Only addresses in program memory are followed.
// Entries are returned in address order.
func Flow(mem Peeker, start ...uint16) ([]Entry, error) {
	found := make(map[uint16]Entry)

	pending := slices.Clone(start)
	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			if !memorymap.IsArea(address, memorymap.Cartridge) {
				break // for loop
			}
			if _, ok := found[address]; ok {
				break // for loop
			}

			e, err := Decode(mem, address)
			if err != nil {
				return nil, err
			}
			if e.Level == EntryLevelUnknown {
				found[address] = e
				break // for loop
			}

			e.Level = EntryLevelBlessed
			found[address] = e

			next, more, branch := destinations(mem, e)
			if branch {
				pending = append(pending, next)
			}
			if !more {
				break // for loop
			}
			address = e.Next()

			// the top of memory has been reached
			if address < e.Result.Address {
				break // for loop
			}
		}
	}

	entries := make([]Entry, 0, len(found))
	for _, e := range found {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return int(a.Result.Address) - int(b.Result.Address)
	})

	return entries, nil
}

// destinations returns the address the instruction can transfer control to
// (branch is true if there is such an address) and whether execution can
// continue with the following instruction (more)
func destinations(mem Peeker, e Entry) (dest uint16, more bool, branch bool) {
	defn := e.Result.Defn
	data := e.Result.InstructionData

	switch defn.Effect {
	case instructions.Flow:
		if defn.IsBranch() {
			return e.Result.Address + 2 + uint16(int8(data)), true, true
		}

		if defn.AddressingMode == instructions.Indirect {
			// only pointers in program memory are constant
			if !memorymap.IsArea(data, memorymap.Cartridge) {
				return 0, false, false
			}

			// the high byte of the pointer is read from the same page
			hi := (data & 0xff00) | uint16(uint8(data)+1)
			return uint16(mem.Peek(data)) | uint16(mem.Peek(hi))<<8, false, true
		}

		return data, false, true

	case instructions.Subroutine:
		if defn.Mnemonic == "JSR" {
			return data, true, true
		}
		return 0, false, false

	case instructions.Interrupt:
		if defn.Mnemonic == "BRK" {
			return uint16(mem.Peek(0xfffe)) | uint16(mem.Peek(0xffff))<<8, false, true
		}
		return 0, false, false
	}

	return 0, true, false
}
