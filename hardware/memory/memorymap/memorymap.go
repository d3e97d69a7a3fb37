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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case DMA:
		return "DMA"
	case Expansion:
		return "Expansion"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	DMA
	Expansion
	Cartridge
)

// The origin and memory top for each area of memory.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginIO        = uint16(0x4000)
	MemtopIO        = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x7fff)
	OriginCart      = uint16(0x8000)
	MemtopCart      = uint16(0xffff)
)

// The single DMA register sits in the IO area but is not mirrored.
const AddressDMA = uint16(0x4014)

// Mirror masks. MaskRAM keeps the bits of a RAM address that select a byte in
// the physical 2KiB. MaskPPU keeps the bits of a PPU address that select one
// of the eight registers, leaving the address in the primary mirror.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x2007)
)

// The cartridge area is divided into two fixed banks of 16KiB.
const (
	OriginCartLower = OriginCart
	OriginCartUpper = uint16(0xc000)
	BankSize        = 0x4000
)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address & MaskPPU, PPU
	case address == AddressDMA:
		return address, DMA
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopExpansion:
		return address, Expansion
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
