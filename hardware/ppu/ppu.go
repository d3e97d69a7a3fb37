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

package ppu

import (
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// Frame geometry, measured in dots and scanlines.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	// vblank flag is set on dot 1 of this scanline
	VBlankScanline = 241

	// vblank flag is cleared on dot 1 of the pre-render scanline
	PreRenderScanline = 261
)

// Bits in the PPUSTATUS register.
const (
	StatusVBlank         = uint8(0x80)
	StatusSpriteZeroHit  = uint8(0x40)
	StatusSpriteOverflow = uint8(0x20)
)

// Bits in the PPUCTRL register.
const (
	// VRAM address increments by 32 after a PPUDATA access when set. 1 when
	// not set
	CtrlIncrement = uint8(0x04)
)

// VRAMSize is the size of the PPU address space. Addresses written to PPUADDR
// are masked to this size.
const VRAMSize = 0x4000

// Registers is the CPU facing side of the PPU.
type Registers struct {
	Ctrl    uint8
	Mask    uint8
	Status  uint8
	OAMAddr uint8

	OAM  [256]uint8
	VRAM [VRAMSize]uint8

	ScrollX uint8
	ScrollY uint8

	// the address used by PPUDATA
	Addr uint16

	// PPUSCROLL and PPUADDR are written twice to set the full value. the
	// toggles are reset by reading PPUSTATUS
	scrollToggle bool
	addrToggle   bool

	// PPUDATA reads are delayed by one read
	readBuffer uint8

	// reading a write-only register returns the last value written to any
	// register
	latch uint8

	// set by a write to OAMDMA. the page is the high byte of the CPU
	// address to copy from
	dmaPending bool
	dmaPage    uint8

	// current beam position
	Scanline int
	Dot      int
	Frame    int
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() *Registers {
	return &Registers{}
}

// Reset returns registers and the beam position to the power-on state. The
// contents of VRAM and OAM are preserved.
func (r *Registers) Reset() {
	r.Ctrl = 0
	r.Mask = 0
	r.Status = 0
	r.OAMAddr = 0
	r.ScrollX = 0
	r.ScrollY = 0
	r.Addr = 0
	r.scrollToggle = false
	r.addrToggle = false
	r.readBuffer = 0
	r.latch = 0
	r.dmaPending = false
	r.dmaPage = 0
	r.Scanline = 0
	r.Dot = 0
	r.Frame = 0
}

func (r *Registers) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d vblank=%v ctrl=%02x mask=%02x status=%02x addr=%04x",
		r.Frame, r.Scanline, r.Dot, r.VBlank(), r.Ctrl, r.Mask, r.Status, r.Addr)
}

func (r *Registers) increment() {
	if r.Ctrl&CtrlIncrement == CtrlIncrement {
		r.Addr += 32
	} else {
		r.Addr++
	}
	r.Addr &= VRAMSize - 1
}

// RegisterWrite implements the cpubus.Peripheral interface.
func (r *Registers) RegisterWrite(offset uint16, data uint8) {
	r.latch = data

	switch offset {
	case cpubus.PPUCTRLOffset:
		r.Ctrl = data
	case cpubus.PPUMASKOffset:
		r.Mask = data
	case cpubus.PPUSTATUSOffset:
		// read only
	case cpubus.OAMADDROffset:
		r.OAMAddr = data
	case cpubus.OAMDATAOffset:
		r.OAM[r.OAMAddr] = data
		r.OAMAddr++
	case cpubus.PPUSCROLLOffset:
		if r.scrollToggle {
			r.ScrollY = data
		} else {
			r.ScrollX = data
		}
		r.scrollToggle = !r.scrollToggle
	case cpubus.PPUADDROffset:
		if r.addrToggle {
			r.Addr = (r.Addr & 0xff00) | uint16(data)
		} else {
			r.Addr = (uint16(data) << 8) | (r.Addr & 0x00ff)
		}
		r.Addr &= VRAMSize - 1
		r.addrToggle = !r.addrToggle
	case cpubus.PPUDATAOffset:
		r.VRAM[r.Addr] = data
		r.increment()
	case cpubus.OAMDMAOffset:
		r.dmaPending = true
		r.dmaPage = data
		r.Addr = 0
		r.addrToggle = false
	}
}

// RegisterRead implements the cpubus.RegisterReader interface.
func (r *Registers) RegisterRead(offset uint16) uint8 {
	switch offset {
	case cpubus.PPUSTATUSOffset:
		// the lower bits of the status register are whatever was last
		// written to the register window
		v := r.Status | (r.latch & 0x1f)
		r.Status &^= StatusVBlank
		r.scrollToggle = false
		r.addrToggle = false
		return v
	case cpubus.OAMDATAOffset:
		return r.OAM[r.OAMAddr]
	case cpubus.PPUDATAOffset:
		v := r.readBuffer
		r.readBuffer = r.VRAM[r.Addr]
		r.increment()
		return v
	}

	return r.latch
}

// DMA returns the page written to the OAMDMA register, if a DMA is pending.
// The pending flag is cleared by this function.
func (r *Registers) DMA() (uint8, bool) {
	if !r.dmaPending {
		return 0, false
	}
	r.dmaPending = false
	return r.dmaPage, true
}

// Step advances the beam by the number of dots. Returns true if a new frame
// was started.
func (r *Registers) Step(dots int) bool {
	var newFrame bool

	for range dots {
		r.Dot++
		if r.Dot >= DotsPerScanline {
			r.Dot = 0
			r.Scanline++
			if r.Scanline >= ScanlinesPerFrame {
				r.Scanline = 0
				r.Frame++
				newFrame = true
			}
		}

		if r.Dot == 1 {
			switch r.Scanline {
			case VBlankScanline:
				r.Status |= StatusVBlank
			case PreRenderScanline:
				r.Status &^= StatusVBlank | StatusSpriteZeroHit | StatusSpriteOverflow
			}
		}
	}

	return newFrame
}

// VBlank returns true if the vblank flag is set in the status register.
func (r *Registers) VBlank() bool {
	return r.Status&StatusVBlank == StatusVBlank
}

// Snapshot creates a copy of the PPU registers and video memory.
func (r *Registers) Snapshot() *Registers {
	n := *r
	return &n
}

// PatternTableSize is the size of the two pattern tables at the start of
// VRAM.
const PatternTableSize = 0x2000

// LoadPatterns copies pattern data into the pattern tables. Data beyond the
// size of the pattern tables is ignored.
func (r *Registers) LoadPatterns(chr []uint8) {
	copy(r.VRAM[:PatternTableSize], chr)
}
