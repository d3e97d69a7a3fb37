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

package execution

import (
	"github.com/jetsetilly/gopher2a03/curated"
)

// ExpectedCycles returns the number of cycles the instruction should have
// taken given the page fault and branch outcome recorded in the result.
func (r Result) ExpectedCycles() int {
	c := r.Defn.Cycles

	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			c++
			if r.PageFault {
				c++
			}
		}
		return c
	}

	if r.PageFault {
		c++
	}
	return c
}

// IsValid returns an error if the result is inconsistent with the
// instruction definition.
func (r Result) IsValid() error {
	switch {
	case !r.Final:
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	case r.PageFault && !r.Defn.PageSensitive:
		return curated.Errorf("cpu: unexpected page fault for %s", r.Defn.Mnemonic)
	case r.BranchSuccess && !r.Defn.IsBranch():
		return curated.Errorf("cpu: branch outcome recorded for %s", r.Defn.Mnemonic)
	case r.PageFault && r.Defn.IsBranch() && !r.BranchSuccess:
		return curated.Errorf("cpu: page fault for a branch not taken")
	case r.ByteCount != r.Defn.Bytes:
		return curated.Errorf("cpu: %s read %d bytes during decode (expected %d)", r.Defn.Mnemonic, r.ByteCount, r.Defn.Bytes)
	}

	if expected := r.ExpectedCycles(); r.Cycles != expected {
		return curated.Errorf("cpu: %s (%#02x) took %d cycles (expected %d)", r.Defn.Mnemonic, r.Defn.OpCode, r.Cycles, expected)
	}

	return nil
}
