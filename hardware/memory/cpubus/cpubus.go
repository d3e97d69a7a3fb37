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

// Package cpubus defines the interfaces between the CPU, the memory bus and
// the peripherals attached to it.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are translated to their primary mirror by the implementation
// so the CPU need not care which part of memory it is accessing.
//
// Memory access never fails. Every address in the 16 bit address space is
// backed by something.
type Memory interface {
	Read(address uint16) uint8
	Read16(address uint16) uint16
	Write(address uint16, data uint8)
}

// Peripheral is implemented by devices that respond to writes to their
// memory mapped registers. The offset is the canonical address of the
// register, after mirroring has been removed.
type Peripheral interface {
	RegisterWrite(offset uint16, data uint8)
}

// RegisterReader is an optional extension of the Peripheral interface for
// devices with readable registers. Reading a register may have side effects
// in the peripheral.
type RegisterReader interface {
	RegisterRead(offset uint16) uint8
}

// Interrupt vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
