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
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// operations that consume a value.
type readOp func(mc *CPU, v uint8)

// operations that produce a value to be stored.
type writeOp func(mc *CPU) uint8

// operations that modify a value.
type rmwOp func(mc *CPU, v uint8) uint8

// operations with no operand.
type impliedOp func(mc *CPU)

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

func (mc *CPU) compare(reg uint8, v uint8) {
	r := registers.NewRegister(reg, "")
	mc.Status.Carry, _ = r.Subtract(v, true)
	mc.setZN(r.Value())
}

// the 2A03 has no decimal mode. the decimal flag can be set and cleared but it
// has no effect on arithmetic
func opADC(mc *CPU, v uint8) {
	r := mc.A
	mc.Status.Carry, mc.Status.Overflow = r.Add(v, mc.Status.Carry)
	mc.SetA(r.Value())
}

func opSBC(mc *CPU, v uint8) {
	opADC(mc, ^v)
}

func opORA(mc *CPU, v uint8) {
	mc.SetA(mc.A.Value() | v)
}

func opAND(mc *CPU, v uint8) {
	mc.SetA(mc.A.Value() & v)
}

func opEOR(mc *CPU, v uint8) {
	mc.SetA(mc.A.Value() ^ v)
}

func opCMP(mc *CPU, v uint8) {
	mc.compare(mc.A.Value(), v)
}

var readOps = map[string]readOp{
	"LDA": func(mc *CPU, v uint8) { mc.SetA(v) },
	"LDX": func(mc *CPU, v uint8) { mc.SetX(v) },
	"LDY": func(mc *CPU, v uint8) { mc.SetY(v) },
	"ADC": opADC,
	"SBC": opSBC,
	"ORA": opORA,
	"AND": opAND,
	"EOR": opEOR,
	"CMP": opCMP,
	"CPX": func(mc *CPU, v uint8) { mc.compare(mc.X.Value(), v) },
	"CPY": func(mc *CPU, v uint8) { mc.compare(mc.Y.Value(), v) },
	"BIT": func(mc *CPU, v uint8) {
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40
	},

	// the value is read but discarded
	"NOP": func(mc *CPU, v uint8) {},

	// undocumented
	"LAX": func(mc *CPU, v uint8) {
		mc.SetA(v)
		mc.SetX(v)
	},
	"ANC": func(mc *CPU, v uint8) {
		opAND(mc, v)
		mc.Status.Carry = mc.Status.Sign
	},
	"ALR": func(mc *CPU, v uint8) {
		opAND(mc, v)
		mc.SetA(opLSR(mc, mc.A.Value()))
	},
	"ARR": func(mc *CPU, v uint8) {
		r := registers.NewRegister(mc.A.Value()&v, "")
		r.ROR(mc.Status.Carry)
		mc.SetA(r.Value())
		mc.Status.Carry = r.IsBitV()
		mc.Status.Overflow = (r.Value()>>6)&1 != (r.Value()>>5)&1
	},
	"AXS": func(mc *CPU, v uint8) {
		r := registers.NewRegister(mc.A.Value()&mc.X.Value(), "")
		mc.Status.Carry, _ = r.Subtract(v, true)
		mc.SetX(r.Value())
	},
}

var writeOps = map[string]writeOp{
	"STA": func(mc *CPU) uint8 { return mc.A.Value() },
	"STX": func(mc *CPU) uint8 { return mc.X.Value() },
	"STY": func(mc *CPU) uint8 { return mc.Y.Value() },

	// undocumented. no flags are affected
	"SAX": func(mc *CPU) uint8 { return mc.A.Value() & mc.X.Value() },
}

func opASL(mc *CPU, v uint8) uint8 {
	r := registers.NewRegister(v, "")
	mc.Status.Carry = r.ASL()
	mc.setZN(r.Value())
	return r.Value()
}

func opLSR(mc *CPU, v uint8) uint8 {
	r := registers.NewRegister(v, "")
	mc.Status.Carry = r.LSR()
	mc.setZN(r.Value())
	return r.Value()
}

func opROL(mc *CPU, v uint8) uint8 {
	r := registers.NewRegister(v, "")
	mc.Status.Carry = r.ROL(mc.Status.Carry)
	mc.setZN(r.Value())
	return r.Value()
}

func opROR(mc *CPU, v uint8) uint8 {
	r := registers.NewRegister(v, "")
	mc.Status.Carry = r.ROR(mc.Status.Carry)
	mc.setZN(r.Value())
	return r.Value()
}

func opINC(mc *CPU, v uint8) uint8 {
	v++
	mc.setZN(v)
	return v
}

func opDEC(mc *CPU, v uint8) uint8 {
	v--
	mc.setZN(v)
	return v
}

var rmwOps = map[string]rmwOp{
	"ASL": opASL,
	"LSR": opLSR,
	"ROL": opROL,
	"ROR": opROR,
	"INC": opINC,
	"DEC": opDEC,

	// undocumented. the modified value is used by a second operation
	"SLO": func(mc *CPU, v uint8) uint8 {
		v = opASL(mc, v)
		opORA(mc, v)
		return v
	},
	"RLA": func(mc *CPU, v uint8) uint8 {
		v = opROL(mc, v)
		opAND(mc, v)
		return v
	},
	"SRE": func(mc *CPU, v uint8) uint8 {
		v = opLSR(mc, v)
		opEOR(mc, v)
		return v
	},
	"RRA": func(mc *CPU, v uint8) uint8 {
		v = opROR(mc, v)
		opADC(mc, v)
		return v
	},
	"DCP": func(mc *CPU, v uint8) uint8 {
		v = opDEC(mc, v)
		opCMP(mc, v)
		return v
	},
	"ISC": func(mc *CPU, v uint8) uint8 {
		v = opINC(mc, v)
		opSBC(mc, v)
		return v
	},
}

var impliedOps = map[string]impliedOp{
	"CLC": func(mc *CPU) { mc.Status.Carry = false },
	"SEC": func(mc *CPU) { mc.Status.Carry = true },
	"CLI": func(mc *CPU) { mc.Status.InterruptDisable = false },
	"SEI": func(mc *CPU) { mc.Status.InterruptDisable = true },
	"CLV": func(mc *CPU) { mc.Status.Overflow = false },
	"CLD": func(mc *CPU) { mc.Status.DecimalMode = false },
	"SED": func(mc *CPU) { mc.Status.DecimalMode = true },

	"TAX": func(mc *CPU) { mc.SetX(mc.A.Value()) },
	"TXA": func(mc *CPU) { mc.SetA(mc.X.Value()) },
	"TAY": func(mc *CPU) { mc.SetY(mc.A.Value()) },
	"TYA": func(mc *CPU) { mc.SetA(mc.Y.Value()) },
	"TSX": func(mc *CPU) { mc.SetX(mc.SP.Value()) },

	// the only transfer that doesn't affect the flags
	"TXS": func(mc *CPU) { mc.SP.Load(mc.X.Value()) },

	"INX": func(mc *CPU) { mc.SetX(mc.X.Value() + 1) },
	"DEX": func(mc *CPU) { mc.SetX(mc.X.Value() - 1) },
	"INY": func(mc *CPU) { mc.SetY(mc.Y.Value() + 1) },
	"DEY": func(mc *CPU) { mc.SetY(mc.Y.Value() - 1) },

	"PHA": func(mc *CPU) { mc.push(mc.A.Value()) },
	"PHP": func(mc *CPU) { mc.push(mc.Status.Push(true)) },
	"PLA": func(mc *CPU) { mc.SetA(mc.pull()) },
	"PLP": func(mc *CPU) { mc.Status.FromValue(mc.pull()) },

	"NOP": func(mc *CPU) {},
}

var branchConditions = map[string]func(mc *CPU) bool{
	"BPL": func(mc *CPU) bool { return !mc.Status.Sign },
	"BMI": func(mc *CPU) bool { return mc.Status.Sign },
	"BVC": func(mc *CPU) bool { return !mc.Status.Overflow },
	"BVS": func(mc *CPU) bool { return mc.Status.Overflow },
	"BCC": func(mc *CPU) bool { return !mc.Status.Carry },
	"BCS": func(mc *CPU) bool { return mc.Status.Carry },
	"BNE": func(mc *CPU) bool { return !mc.Status.Zero },
	"BEQ": func(mc *CPU) bool { return mc.Status.Zero },
}

// operations that return from a subroutine or an interrupt, or that cause a
// software interrupt. none of these have an operand.
var controlOps = map[string]impliedOp{
	// the byte following the BRK opcode is padding and is skipped. unlike JSR
	// the program counter is pushed low byte first. RTI pulls low byte first
	// so a BRK/RTI round trip returns with the bytes of the address swapped.
	// the pushed status has the break bit set
	"BRK": func(mc *CPU) {
		mc.PC.Increment()
		pc := mc.PC.Address()
		mc.push(uint8(pc))
		mc.push(uint8(pc >> 8))
		mc.push(mc.Status.Push(true))
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.mem.Read16(cpubus.IRQ))
	},

	"RTI": func(mc *CPU) {
		mc.Status.FromValue(mc.pull())
		mc.PC.Load(mc.pull16())
	},

	// JSR pushes the address of the last byte of the JSR instruction so one is
	// added to the pulled address
	"RTS": func(mc *CPU) {
		mc.PC.Load(mc.pull16() + 1)
	},
}
