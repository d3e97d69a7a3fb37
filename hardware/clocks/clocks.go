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

// Package clocks defines the constant values that define the speed of the main
// clock in the NES and the relationship between the CPU and PPU clocks.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// NTSC is the CPU clock speed of an NTSC machine in MHz.
const NTSC = 1.789773

// DotsPerCycle is the number of PPU dots for every CPU cycle on an NTSC
// machine.
const DotsPerCycle = 3

// FramesPerSecond is the rate at which an NTSC machine generates frames.
const FramesPerSecond = 60
