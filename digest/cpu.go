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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// the number of bytes recorded for each instruction
const resultLength = 17

// CPU implements the cpu.Observer interface. Every instruction observed
// changes the digest.
type CPU struct {
	digest [sha1.Size]byte

	// the previous digest followed by the state of the instruction
	buffer [sha1.Size + resultLength]byte

	instructions int
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU() *CPU {
	return &CPU{}
}

// Hash implements the digest.Digest interface.
func (dig *CPU) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *CPU) ResetDigest() {
	clear(dig.digest[:])
	dig.instructions = 0
}

// Instructions returns the number of instructions that have contributed to
// the digest.
func (dig *CPU) Instructions() int {
	return dig.instructions
}

// Observe implements the cpu.Observer interface.
func (dig *CPU) Observe(result execution.Result) {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the buffer
	n := copy(dig.buffer[:], dig.digest[:])

	b := dig.buffer[n:n]
	b = binary.LittleEndian.AppendUint16(b, result.Address)
	b = append(b, uint8(result.Cycles))
	b = appendState(b, result.Before)
	b = appendState(b, result.After)

	dig.digest = sha1.Sum(dig.buffer[:])
	dig.instructions++
}

func appendState(b []byte, s execution.State) []byte {
	b = binary.LittleEndian.AppendUint16(b, s.PC)
	return append(b, s.A, s.X, s.Y, s.P, s.SP)
}
