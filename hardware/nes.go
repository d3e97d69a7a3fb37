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
	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/clocks"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/performance/limiter"
)

// ResetCycles is the number of cycles taken by the reset sequence. The cycle
// count of the NES begins at this value.
const ResetCycles = 7

// DMACycles is the number of cycles the CPU is stalled for during a sprite
// DMA. One more cycle is required if the DMA begins on an odd cycle.
const DMACycles = 513

// NES contains all the NES sub-systems.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	PPU *ppu.Registers

	// the number of CPU cycles since the last reset
	Cycles int

	compat   bool
	observer cpu.Observer
	quiet    bool

	// optional real-time pacing. nil if the emulation runs as fast as possible
	limiter *limiter.FpsLimiter
}

// Option is a functional option for NewNES().
type Option func(nes *NES)

// WithCompatibilityMode starts the CPU at the compatibility address after a
// reset and fixes the value of the PPU status register as seen by the CPU.
func WithCompatibilityMode() Option {
	return func(nes *NES) {
		nes.compat = true
	}
}

// WithObserver attaches an observer to the CPU.
func WithObserver(observer cpu.Observer) Option {
	return func(nes *NES) {
		nes.observer = observer
	}
}

// WithoutLogging stops the NES from adding entries to the log. Useful when
// the NES is only used as a source of memory.
func WithoutLogging() Option {
	return func(nes *NES) {
		nes.quiet = true
	}
}

// NewNES creates a new NES and everything associated with the hardware. A
// program must be attached with Attach() before the emulation can run.
func NewNES(opts ...Option) (*NES, error) {
	nes := &NES{}
	for _, o := range opts {
		o(nes)
	}

	nes.Mem = memory.NewMemory()
	nes.Mem.SetCompatibility(nes.compat)

	nes.PPU = ppu.NewRegisters()
	nes.Mem.Plumb(nes.PPU)

	var cpuOpts []cpu.Option
	if nes.compat {
		cpuOpts = append(cpuOpts, cpu.WithCompatibilityMode())
	}
	if nes.observer != nil {
		cpuOpts = append(cpuOpts, cpu.WithObserver(nes.observer))
	}

	var err error
	nes.CPU, err = cpu.NewCPU(nes.Mem, cpuOpts...)
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}

	return nes, nil
}

// AllowLogging implements the logger.Permission interface.
func (nes *NES) AllowLogging() bool {
	return !nes.quiet
}

// Attach program banks to the NES and reset.
func (nes *NES) Attach(banks ...memory.Bank) error {
	if err := nes.Mem.LoadBanks(banks...); err != nil {
		return curated.Errorf("nes: %v", err)
	}
	logger.Logf(nes, "nes", "attached %d program bank(s)", len(banks))
	nes.Reset()
	return nil
}

// AttachCartridge loads the cartridge, attaches its program banks and copies
// any pattern data into the PPU.
func (nes *NES) AttachCartridge(cl *cartridgeloader.Loader) error {
	if err := cl.Load(); err != nil {
		return curated.Errorf("nes: %v", err)
	}

	cart, err := cl.Cartridge()
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}

	if cart.Mapper != 0 {
		logger.Logf(nes, "nes", "%s: mapper %d is not supported. treating as mapper 0", cl.ShortName(), cart.Mapper)
	}

	nes.PPU.LoadPatterns(cart.CHR)

	return nes.Attach(cart.Banks...)
}

// Reset the NES. The CPU is reset and will load the PC from the reset vector
// (or the compatibility address). VRAM is not cleared.
func (nes *NES) Reset() {
	nes.PPU.Reset()
	nes.CPU.Reset()
	nes.Cycles = ResetCycles
	logger.Logf(nes, "nes", "reset: PC=%s", nes.CPU.PC)
}

// SetRealTime turns real-time pacing on or off. When on, the emulation is
// limited to the frame rate of an NTSC machine.
func (nes *NES) SetRealTime(realTime bool) error {
	if !realTime {
		if nes.limiter != nil {
			nes.limiter.Close()
			nes.limiter = nil
		}
		return nil
	}

	if nes.limiter != nil {
		return nil
	}

	var err error
	nes.limiter, err = limiter.NewFPSLimiter(clocks.FramesPerSecond)
	if err != nil {
		return curated.Errorf("nes: %v", err)
	}
	return nil
}

// End releases any resources held by the NES.
func (nes *NES) End() {
	_ = nes.SetRealTime(false)
}

// Step the emulation one CPU instruction and returns the number of cycles
// consumed. The number of cycles includes any DMA stall caused by the
// instruction.
func (nes *NES) Step() (int, error) {
	cycles, err := nes.CPU.ExecuteInstruction()
	if err != nil {
		logger.Log(nes, "nes", err)
		return 0, err
	}

	if page, ok := nes.PPU.DMA(); ok {
		cycles += nes.dma(page)
	}

	nes.Cycles += cycles

	if nes.PPU.Step(cycles*clocks.DotsPerCycle) && nes.limiter != nil {
		nes.limiter.Wait()
	}

	return cycles, nil
}

// copy a page of CPU memory into OAM. returns the number of cycles the CPU is
// stalled for.
//
// the copy reads through the bus like the CPU does, so a DMA from the PPU
// register pages $20-$3F has the same side effects as reading the registers
func (nes *NES) dma(page uint8) int {
	origin := uint16(page) << 8
	for i := range uint16(256) {
		nes.PPU.OAM[nes.PPU.OAMAddr+uint8(i)] = nes.Mem.Read(origin + i)
	}

	if nes.Cycles&1 == 1 {
		return DMACycles + 1
	}
	return DMACycles
}

// Peek returns the value at the address without side effects.
func (nes *NES) Peek(address uint16) uint8 {
	return nes.Mem.Peek(address)
}
