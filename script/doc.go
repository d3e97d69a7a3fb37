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

// Package script compiles Lua expressions that are used to decide when the
// emulation should halt. The expression is evaluated after every instruction
// and a truthy result ends the emulation. For example:
//
//	pc == 0xc66e and peek(0x02) ~= 0
//
// The following globals are available to the expression:
//
//	a, x, y, p, sp, pc    the CPU registers after the instruction
//	cycles                the number of CPU cycles since reset
//	peek(address)         the value in memory, without side effects
//
// Only the base and math libraries are opened.
package script
