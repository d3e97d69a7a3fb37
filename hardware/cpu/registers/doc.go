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

// Package registers implements the four types of registers found in the 2A03
// CPU. The 8 bit general purpose registers (A, X and Y), the program counter,
// the stack pointer and the status register.
//
// Register arithmetic and logic functions return the carry and overflow
// results of the operation but never touch the status register. It is up to
// the caller to set the status flags as required. For example, the following
// sequence:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// The stack pointer is a special case. It is stored as a 16 bit address that
// is always inside the first page of memory. Incrementing or decrementing
// beyond the edges of that page wraps around, without leaving it.
package registers
