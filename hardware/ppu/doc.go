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

// Package ppu implements the register window of the NES picture processing
// unit. It is enough of the PPU for programs that wait on the vertical blank
// and for programs that write to video memory. Nothing is drawn.
//
// The Registers type implements the cpubus.Peripheral and
// cpubus.RegisterReader interfaces and should be plumbed into the memory
// package with the Memory.Plumb() function.
//
// Timing is driven externally with the Step() function. There are three PPU
// dots for every CPU cycle.
package ppu
