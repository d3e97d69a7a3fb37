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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// Because of the limited number of address lines used by the chips in the
// NES, some addresses are mirrors of others. The internal RAM is 2KiB but it
// appears four times in the first 8KiB of the address space. The eight
// picture processor registers are repeated every eight bytes between 0x2000
// and 0x3fff.
//
// The MapAddress() function is the core of the package. It returns the
// primary address and the area of memory the address belongs to.
package memorymap
