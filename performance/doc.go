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

// Package performance measures how quickly the emulation runs.
//
// Check() runs a cartridge for a fixed length of time, after a short warm-up
// period, and reports the number of frames produced. The figure is compared
// against the NTSC frame rate.
//
// RunProfiler() wraps any function with the CPU, memory and execution trace
// profilers selected by a Profile value. It is used by Check() but is equally
// useful around a normal run of the emulation.
package performance
