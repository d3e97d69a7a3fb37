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

// Package tracer produces and checks CPU execution traces. Both the Writer
// and the Comparison types implement the cpu.Observer interface.
//
// Trace lines follow the layout of the widely used nestest log. For example:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Undocumented instructions are marked with an asterisk before the mnemonic.
// The register values are the values before the instruction was executed and
// the cycle count is the number of cycles that had elapsed before the
// instruction.
//
// The Comparison type reads a reference trace and checks every executed
// instruction against the next line of the reference. Only the address, the
// registers and (if present) the cycle count are compared, so reference logs
// with additional annotations can be used without modification.
package tracer
