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

package cpu

import (
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// addressing is the result of resolving the operand of an instruction.
type addressing struct {
	// the effective address of the operand
	address uint16

	// the indexed address is in a different page to the base address
	pageFault bool

	// immediate operands are part of the instruction and have no address
	immediate bool
	value     uint8
}

// resolver computes the operand of an instruction, fetching the operand
// bytes as it does so.
type resolver func(mc *CPU) addressing

// resolverFor returns the resolver for the addressing mode. modes that don't
// resolve to an operand (Implied, Accumulator and Relative) return nil.
func resolverFor(mode instructions.AddressingMode) resolver {
	switch mode {
	case instructions.Immediate:
		return immediate
	case instructions.ZeroPage:
		return zeroPage
	case instructions.ZeroPageIndexedX:
		return zeroPageIndexed(func(mc *CPU) uint8 { return mc.X.Value() })
	case instructions.ZeroPageIndexedY:
		return zeroPageIndexed(func(mc *CPU) uint8 { return mc.Y.Value() })
	case instructions.Absolute:
		return absolute
	case instructions.AbsoluteIndexedX:
		return absoluteIndexed(func(mc *CPU) uint8 { return mc.X.Value() })
	case instructions.AbsoluteIndexedY:
		return absoluteIndexed(func(mc *CPU) uint8 { return mc.Y.Value() })
	case instructions.Indirect:
		return indirect
	case instructions.IndexedIndirect:
		return indexedIndirect
	case instructions.IndirectIndexed:
		return indirectIndexed
	}
	return nil
}

func immediate(mc *CPU) addressing {
	return addressing{immediate: true, value: mc.fetch()}
}

func zeroPage(mc *CPU) addressing {
	return addressing{address: uint16(mc.fetch())}
}

// the indexed address never leaves the zero page
func zeroPageIndexed(index func(mc *CPU) uint8) resolver {
	return func(mc *CPU) addressing {
		zp := mc.fetch()
		a := zp + index(mc)
		if a < zp {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		return addressing{address: uint16(a)}
	}
}

func absolute(mc *CPU) addressing {
	lo := mc.fetch()
	hi := mc.fetch()
	return addressing{address: uint16(hi)<<8 | uint16(lo)}
}

func absoluteIndexed(index func(mc *CPU) uint8) resolver {
	return func(mc *CPU) addressing {
		base := absolute(mc).address
		a := base + uint16(index(mc))
		return addressing{address: a, pageFault: base&0xff00 != a&0xff00}
	}
}

// the high byte of the pointer is read from the same page as the low byte,
// even if the pointer straddles a page boundary
func indirect(mc *CPU) addressing {
	ptr := absolute(mc).address

	hiPtr := ptr + 1
	if ptr&0x00ff == 0x00ff {
		hiPtr = ptr & 0xff00
		mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
	}

	lo := mc.mem.Read(ptr)
	hi := mc.mem.Read(hiPtr)
	return addressing{address: uint16(hi)<<8 | uint16(lo)}
}

// (zp,X). the pointer and both of its bytes are in the zero page
func indexedIndirect(mc *CPU) addressing {
	zp := mc.fetch()
	ptr := zp + mc.X.Value()
	if ptr < zp || ptr == 0xff {
		mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
	}

	lo := mc.mem.Read(uint16(ptr))
	hi := mc.mem.Read(uint16(ptr + 1))
	return addressing{address: uint16(hi)<<8 | uint16(lo)}
}

// (zp),Y. the pointer is in the zero page and the Y register is added to the
// address it points to
func indirectIndexed(mc *CPU) addressing {
	zp := mc.fetch()
	if zp == 0xff {
		mc.LastResult.CPUBug = execution.IndirectIndexedAddressingBug
	}

	lo := mc.mem.Read(uint16(zp))
	hi := mc.mem.Read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)

	a := base + mc.Y.Address()
	return addressing{address: a, pageFault: base&0xff00 != a&0xff00}
}
