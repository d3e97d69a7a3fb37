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

// Package disassembly decodes 2A03 machine code from memory without executing
// it.
//
// Decode() and Linear() treat the bytes at an address as an instruction
// regardless of how that address would be reached. Flow() follows the
// control flow of the program from one or more starting addresses (usually
// the interrupt vectors) and so only disassembles bytes that are reachable.
//
// Flow disassembly cannot see everything. For example:
//
//   - addresses stuffed into the stack and RTS being called, without an
//     explicit JSR
//   - indirect jumps through vectors in RAM
//   - self-modifying code
package disassembly
