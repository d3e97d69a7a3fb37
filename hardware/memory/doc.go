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

// Package memory implements the address space of the NES as seen by the CPU.
//
// The address space is backed by a single 64KiB array. Addresses are
// translated to their primary mirror before every access, using the rules in
// the memorymap package. The 2KiB of RAM is mirrored four times and the eight
// picture processor registers are mirrored every eight bytes.
//
// Writes to the peripheral registers, including the single DMA register, are
// stored and also forwarded exactly once to the Peripheral that has been
// plumbed into the memory, with the canonical offset of the register. If the
// peripheral also implements the RegisterReader interface then reads of the
// peripheral registers are delegated to it.
//
// Program banks are loaded with LoadBanks(). Each bank is 16KiB. A single
// bank is mapped into both halves of the cartridge area.
//
// The Peek() and Poke() functions give access to memory without triggering
// any side effects in the peripheral. They are intended for debuggers and
// test harnesses.
package memory
