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

import (
	"fmt"
	"strings"
)

// Region is a contiguous range of addresses belonging to a single Area.
type Region struct {
	Area  Area
	First uint16
	Last  uint16
}

func (r Region) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", r.First, r.Last, r.Area)
}

// Regions returns the address space divided into contiguous regions, in
// address order.
func Regions() []Region {
	_, area := MapAddress(0)
	regions := []Region{{Area: area}}

	for a := range int(MemtopCart) + 1 {
		_, area := MapAddress(uint16(a))
		r := &regions[len(regions)-1]
		if area == r.Area {
			r.Last = uint16(a)
			continue
		}
		regions = append(regions, Region{Area: area, First: uint16(a), Last: uint16(a)})
	}

	return regions
}

// Summary returns the Regions() as a table, one region per line.
func Summary() string {
	var s strings.Builder
	for _, r := range Regions() {
		s.WriteString(r.String())
		s.WriteByte('\n')
	}
	return s.String()
}
