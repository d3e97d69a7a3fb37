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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a 16 bit address flag. The Valid field is true if the flag was
// specified on the command line.
type Address struct {
	Value uint16
	Valid bool
}

// String implements the flag.Value interface.
func (a *Address) String() string {
	if a == nil || !a.Valid {
		return ""
	}
	return fmt.Sprintf("$%04X", a.Value)
}

// Set implements the flag.Value interface. The address can be prefixed with
// '$' or '0x'.
func (a *Address) Set(s string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit hexadecimal address")
	}
	a.Value = uint16(v)
	a.Valid = true
	return nil
}

// AddAddress flag for next call to Parse().
func (md *Modes) AddAddress(name string, usage string) *Address {
	a := &Address{}
	md.flags.Var(a, name, usage)
	return a
}
