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

// Bug describes one of the known bugs of the 6502 family that was triggered
// during the execution of an instruction.
type Bug string

// List of known CPU bugs.
const (
	NoBug Bug = ""

	// the high byte of an indirect JMP pointer is read from the start of
	// the same page when the low byte of the pointer is 0xff
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the zero page pointer of an (ind,X) instruction wraps inside the zero
	// page when indexed
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// the zero page pointer of an (ind),Y instruction is at the very end of
	// the zero page and the high byte is read from address zero
	IndirectIndexedAddressingBug Bug = "indirect indexed addressing bug"

	// a zero page indexed address wraps around to the start of the zero page
	ZeroPageIndexBug Bug = "zero page index bug"
)
