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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)

	// addition boundary
	r8.Load(255)
	test.ExpectSuccess(t, r8.IsNegative())
	carry, overflow = r8.Add(1, false)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectEquality(t, r8.Value(), 1)

	// adding 0xff with carry leaves the register unchanged but with the carry
	r8.Load(0x10)
	carry, _ = r8.Add(0xff, true)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), 0x10)

	// subtraction. a set carry means no borrow
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)
	test.ExpectSuccess(t, carry)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectFailure(t, carry)
	r8.Load(1)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)

	// signed overflow on subtraction. -128 - 1
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectSuccess(t, overflow)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x1)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x7f)
	test.ExpectFailure(t, carry)
	carry = r8.LSR()
	test.ExpectSuccess(t, carry)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectSuccess(t, carry)
	carry = r8.ROR(true)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectFailure(t, carry)
}

// subtracting with the carry that an addition produced restores the original
// value for every combination of operands
func TestAddSubtractInverse(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b += 3 {
			for _, c := range []bool{false, true} {
				// the carry for the subtraction is the complement of the
				// carry-in of the addition
				r := registers.NewRegister(uint8(a), "A")
				r.Add(uint8(b), c)
				r.Subtract(uint8(b), !c)
				if !test.ExpectEquality(t, r.Value(), uint8(a), a, b, c) {
					return
				}
			}
		}
	}
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// the unused bit is always set
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "sv--dizc")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x24)
	test.ExpectSuccess(t, sr.InterruptDisable)

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.Value(), 0xef)
	test.ExpectEquality(t, sr.String(), "SV--DIZC")

	// pushed values carry the break bit only when requested
	test.ExpectEquality(t, sr.Push(true), 0xff)
	test.ExpectEquality(t, sr.Push(false), 0xef)

	// bits 4 and 5 are ignored when pulling
	sr.FromValue(0x30)
	test.ExpectEquality(t, sr.Value(), 0x20)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(129)
	test.ExpectEquality(t, pc.Address(), 129)

	// increment returns the value before the increment
	test.ExpectEquality(t, pc.Increment(), 129)
	test.ExpectEquality(t, pc.Address(), 130)

	// wrap around the top of memory
	pc.Load(0xffff)
	test.ExpectEquality(t, pc.Increment(), 0xffff)
	test.ExpectEquality(t, pc.Address(), 0)

	// offsets that stay in the same page
	pc.Load(0xc010)
	test.ExpectFailure(t, pc.Offset(0x10))
	test.ExpectEquality(t, pc.Address(), 0xc020)
	test.ExpectFailure(t, pc.Offset(-0x20))
	test.ExpectEquality(t, pc.Address(), 0xc000)

	// offsets that cross a page
	test.ExpectSuccess(t, pc.Offset(-1))
	test.ExpectEquality(t, pc.Address(), 0xbfff)
	test.ExpectSuccess(t, pc.Offset(1))
	test.ExpectEquality(t, pc.Address(), 0xc000)
	test.ExpectEquality(t, pc.String(), "C000")
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), 0x01fd)
	test.ExpectEquality(t, sp.Value(), 0xfd)
	test.ExpectEquality(t, sp.String(), "FD")

	sp.Load(0x00)
	sp.Decrement()
	test.ExpectEquality(t, sp.Address(), 0x01ff)
	sp.Increment()
	test.ExpectEquality(t, sp.Address(), 0x0100)

	// the stack pointer never leaves the stack page
	for i := 0; i < 0x300; i++ {
		sp.Increment()
		if sp.Address() < 0x0100 || sp.Address() > 0x01ff {
			t.Fatalf("stack pointer outside of stack page: %#04x", sp.Address())
		}
	}
	for i := 0; i < 0x300; i++ {
		sp.Decrement()
		if sp.Address() < 0x0100 || sp.Address() > 0x01ff {
			t.Fatalf("stack pointer outside of stack page: %#04x", sp.Address())
		}
	}
}
