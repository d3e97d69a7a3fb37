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

package cpubus

// Register represents a named address in the peripheral register window.
type Register string

// List of peripheral registers.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"
	OAMDMA    Register = "OAMDMA"
)

// Canonical offsets of the peripheral registers.
const (
	PPUCTRLOffset   = uint16(0x2000)
	PPUMASKOffset   = uint16(0x2001)
	PPUSTATUSOffset = uint16(0x2002)
	OAMADDROffset   = uint16(0x2003)
	OAMDATAOffset   = uint16(0x2004)
	PPUSCROLLOffset = uint16(0x2005)
	PPUADDROffset   = uint16(0x2006)
	PPUDATAOffset   = uint16(0x2007)
	OAMDMAOffset    = uint16(0x4014)
)

// Symbols indexes all register names by canonical offset.
var Symbols = map[uint16]Register{
	PPUCTRLOffset:   PPUCTRL,
	PPUMASKOffset:   PPUMASK,
	PPUSTATUSOffset: PPUSTATUS,
	OAMADDROffset:   OAMADDR,
	OAMDATAOffset:   OAMDATA,
	PPUSCROLLOffset: PPUSCROLL,
	PPUADDROffset:   PPUADDR,
	PPUDATAOffset:   PPUDATA,
	OAMDMAOffset:    OAMDMA,
}
