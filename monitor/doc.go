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

// Package monitor implements a line based machine-code monitor for the NES.
// The monitor can single step the CPU, run until a breakpoint or halt
// condition is met, inspect and modify memory, and step backwards through a
// history of snapshots.
//
// The monitor reads commands from any io.Reader and writes to any io.Writer.
// When attached to a real terminal, the easyterm package provides paging of
// long output.
package monitor
