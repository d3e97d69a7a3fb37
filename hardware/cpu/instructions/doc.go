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

// Package instructions defines the instruction set of the 2A03 CPU. The
// definitions describe the taxonomy of each opcode: the mnemonic, the number of
// bytes it occupies, its base cycle cost, addressing mode, page sensitivity
// and the effect it has.
//
// The definitions are read from the instructions.csv file, which is embedded
// in the binary. Opcodes not listed in that file have no definition.
package instructions
