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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// Bank is a single fixed-size program bank.
type Bank [memorymap.BankSize]uint8

// Sentinal error returned by LoadBanks().
const (
	BankCountError = "memory: cannot load %d program banks"
)

// the value returned for reads of the status register in compatibility
// mode. vblank is always set
const compatStatus = uint8(0x80)

// Memory is the NES address space as seen by the CPU.
type Memory struct {
	internal [0x10000]uint8

	periph cpubus.Peripheral
	reader cpubus.RegisterReader

	compat bool
}

// NewMemory is the preferred method of initialisation for Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Plumb a peripheral into the register window. The peripheral will also
// service reads of the register window if it implements the
// cpubus.RegisterReader interface. A nil argument removes the peripheral.
func (mem *Memory) Plumb(periph cpubus.Peripheral) {
	mem.periph = periph
	mem.reader = nil
	if r, ok := periph.(cpubus.RegisterReader); ok {
		mem.reader = r
	}
}

// SetCompatibility turns the test compatibility mode on or off. In
// compatibility mode reads of the status register always return a value
// with the vblank bit set, without consulting the peripheral. All other
// reads of the register window return the last value written.
func (mem *Memory) SetCompatibility(compat bool) {
	mem.compat = compat
}

// Translate returns the primary address for any address.
func (mem *Memory) Translate(address uint16) uint16 {
	a, _ := memorymap.MapAddress(address)
	return a
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	a, area := memorymap.MapAddress(address)
	if area == memorymap.PPU {
		if mem.compat {
			if a == cpubus.PPUSTATUSOffset {
				return compatStatus
			}
		} else if mem.reader != nil {
			return mem.reader.RegisterRead(a)
		}
	}
	return mem.internal[a]
}

// Read16 is an implementation of cpubus.Memory. The high byte is read from the
// address following the translated address and is not itself translated.
func (mem *Memory) Read16(address uint16) uint16 {
	a := mem.Translate(address)
	lo := mem.internal[a]
	hi := mem.internal[a+1]
	return uint16(hi)<<8 | uint16(lo)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	a, area := memorymap.MapAddress(address)
	mem.internal[a] = data
	if mem.periph != nil && (area == memorymap.PPU || area == memorymap.DMA) {
		mem.periph.RegisterWrite(a, data)
	}
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.internal[mem.Translate(address)]
}

// Poke stores a value at the address without side effects.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.internal[mem.Translate(address)] = value
}

// LoadBanks copies program banks into the cartridge area. One bank is mapped
// into both the lower and upper halves. Two banks are mapped into the lower
// and upper halves respectively.
func (mem *Memory) LoadBanks(banks ...Bank) error {
	switch len(banks) {
	case 1:
		copy(mem.internal[memorymap.OriginCartLower:], banks[0][:])
		copy(mem.internal[memorymap.OriginCartUpper:], banks[0][:])
	case 2:
		copy(mem.internal[memorymap.OriginCartLower:], banks[0][:])
		copy(mem.internal[memorymap.OriginCartUpper:], banks[1][:])
	default:
		return curated.Errorf(BankCountError, len(banks))
	}
	return nil
}

// Dump returns a hex dump of the 256 byte page that contains the address.
func (mem *Memory) Dump(address uint16) string {
	origin := address & 0xff00

	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := uint16(0); y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- |", (origin>>4)+y))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.Peek(origin+y*16+x)))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Snapshot creates a copy of memory in its current state. The copy shares the
// plumbed peripheral.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}
