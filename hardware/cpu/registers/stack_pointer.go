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

package registers

import (
	"fmt"
)

// StackPage is the page of memory in which the stack lives.
const StackPage = uint16(0x0100)

// StackPointer represents the SP register in the 2A03 CPU. The value is always
// an address in the stack page.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer. The value is the offset into the stack page.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: StackPage | uint16(val)}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.Value())
}

// Value returns the offset of the stack pointer in the stack page.
func (sp StackPointer) Value() uint8 {
	return uint8(sp.value)
}

// Address returns the full address the stack pointer is pointing to.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load an offset into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = StackPage | uint16(val)
}

// Increment moves the stack pointer up by one. 0x01ff wraps to 0x0100.
func (sp *StackPointer) Increment() {
	sp.Load(sp.Value() + 1)
}

// Decrement moves the stack pointer down by one. 0x0100 wraps to 0x01ff.
func (sp *StackPointer) Decrement() {
	sp.Load(sp.Value() - 1)
}
