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

package hardware

import (
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
)

// State stores the NES sub-systems. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
type State struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	PPU    *ppu.Registers
	Cycles int
}

// Snapshot the state of the NES sub-systems.
func (nes *NES) Snapshot() *State {
	return &State{
		CPU:    nes.CPU.Snapshot(),
		Mem:    nes.Mem.Snapshot(),
		PPU:    nes.PPU.Snapshot(),
		Cycles: nes.Cycles,
	}
}

// Plumb a previously snapshotted state. The state is copied so the same
// snapshot can be plumbed more than once.
func (nes *NES) Plumb(state *State) {
	nes.CPU = state.CPU.Snapshot()
	nes.Mem = state.Mem.Snapshot()
	nes.PPU = state.PPU.Snapshot()
	nes.Cycles = state.Cycles

	nes.Mem.Plumb(nes.PPU)
	nes.CPU.Plumb(nes.Mem)
}
