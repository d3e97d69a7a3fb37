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
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is a valid
// instruction. Blessed entries meanwhile have been reached by following the
// flow of the instructions from a start address.
const (
	EntryLevelUnknown EntryLevel = iota
	EntryLevelDecoded
	EntryLevelBlessed
)

// Entry is a disassembled instruction. The Result field has no register
// state and the Cycles field is the base cycle count of the definition.
type Entry struct {
	Level  EntryLevel
	Result execution.Result
}

// String returns the entry in the same column format as a trace line,
// without the register state. Bytes with no instruction definition are shown
// as a data byte.
func (e Entry) String() string {
	if e.Level == EntryLevelUnknown {
		return fmt.Sprintf("%04X  %02X        .byte $%02X", e.Result.Address, uint8(e.Result.InstructionData), uint8(e.Result.InstructionData))
	}

	mark := " "
	if e.Result.Defn.Undocumented {
		mark = "*"
	}
	return fmt.Sprintf("%04X  %-8s %s%s", e.Result.Address, e.Result.Bytes(), mark, e.Result.String())
}

// Next returns the address of the byte following the entry.
func (e Entry) Next() uint16 {
	return e.Result.Address + uint16(e.Result.ByteCount)
}
