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

// Package cpu emulates the 2A03 CPU found in the NES. The 2A03 is a 6502
// without the decimal mode circuitry.
//
// The CPU executes one instruction at a time with the ExecuteInstruction()
// function, which returns the number of cycles the instruction took. It is up
// to the caller to advance the rest of the system by the corresponding
// amount.
//
// Instructions are dispatched through a table of 256 entries, one for every
// possible opcode. Each entry pairs the instruction definition with a handler
// function that is built from the addressing mode and operation of the
// instruction. Entries without a handler halt the CPU, in which case
// ExecuteInstruction() returns an UnimplementedOpcode error and the program
// counter is left pointing at the offending opcode.
//
// All documented instructions are implemented along with the undocumented
// instructions that behave consistently on the 2A03. The undocumented
// read-modify-write instructions are compositions of two documented
// operations on the same effective address.
//
// Known bugs of the 6502 are reproduced. For example, the indirect JMP
// instruction never crosses a page boundary when reading the high byte of the
// pointer.
//
// The CPU can be created with options. WithObserver() attaches an Observer
// that receives an execution.Result for every completed instruction.
// WithCompatibilityMode() makes the CPU start at address 0xc000 rather than at
// the address in the reset vector, which is how automated test programs are
// commonly run.
package cpu
