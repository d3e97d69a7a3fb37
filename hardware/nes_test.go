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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/govern"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/ppu"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/test"
)

// program creates a bank with the code at the start of the bank. the reset
// vector points to $C000, which is where the bank appears when it is the only
// bank
func program(code ...uint8) memory.Bank {
	var b memory.Bank
	copy(b[:], code)
	b[0x3ffc] = 0x00
	b[0x3ffd] = 0xc0
	return b
}

func newNES(t *testing.T, opts ...hardware.Option) *hardware.NES {
	t.Helper()
	nes, err := hardware.NewNES(opts...)
	test.DemandSuccess(t, err)
	t.Cleanup(nes.End)
	return nes
}

func TestAttach(t *testing.T) {
	nes := newNES(t)

	err := nes.Attach()
	test.ExpectSuccess(t, curated.Has(err, memory.BankCountError))

	err = nes.Attach(program(), program(), program())
	test.ExpectSuccess(t, curated.Has(err, memory.BankCountError))

	err = nes.Attach(program(0xea))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles)

	// the single bank is mirrored into both halves of the cartridge area
	test.ExpectEquality(t, nes.Mem.Read(0x8000), uint8(0xea))
	test.ExpectEquality(t, nes.Mem.Read(0xc000), uint8(0xea))
}

func TestLoadImmediate(t *testing.T) {
	nes := newNES(t, hardware.WithCompatibilityMode())

	// the reset vector is ignored in compatibility mode
	b := program(0xa9, 0x05)
	b[0x3ffd] = 0x90
	test.DemandSuccess(t, nes.Attach(b))
	test.ExpectEquality(t, nes.CPU.PC.Address(), cpu.CompatibilityPC)

	cycles, err := nes.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x05))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc002))
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles+2)
}

func TestCountdownLoop(t *testing.T) {
	nes := newNES(t)

	// LDX #$02; DEX; BNE -3; <unimplemented>
	test.DemandSuccess(t, nes.Attach(program(0xa2, 0x02, 0xca, 0xd0, 0xfd, 0x02)))

	err := nes.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(0x00))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc005))

	// LDX 2 + (DEX 2 + BNE 3) + (DEX 2 + BNE 2)
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles+2+5+4)
}

func TestWaitForVBlank(t *testing.T) {
	// loop: LDA $2002; BPL loop; <unimplemented>
	code := []uint8{0xad, 0x02, 0x20, 0x10, 0xfb, 0x02}

	nes := newNES(t)
	test.DemandSuccess(t, nes.Attach(program(code...)))
	err := nes.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
	test.ExpectEquality(t, nes.PPU.Scanline, ppu.VBlankScanline)
	test.ExpectEquality(t, nes.PPU.Frame, 0)
	test.ExpectSuccess(t, nes.Cycles*3 >= ppu.VBlankScanline*ppu.DotsPerScanline)

	// in compatibility mode the status register always has the vblank bit set
	nes = newNES(t, hardware.WithCompatibilityMode())
	b := program()
	copy(b[0:], code)
	test.DemandSuccess(t, nes.Attach(b))
	err = nes.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnimplementedOpcode))
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles+4+2)
}

func TestDMA(t *testing.T) {
	nes := newNES(t)

	for i := range uint16(256) {
		nes.Mem.Poke(0x0200+i, uint8(i))
	}

	// LDA #$02; STA $4014
	test.DemandSuccess(t, nes.Attach(program(0xa9, 0x02, 0x8d, 0x14, 0x40)))

	_, err := nes.Step()
	test.DemandSuccess(t, err)

	// the DMA starts on an odd cycle
	cycles, err := nes.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 4+hardware.DMACycles+1)

	test.ExpectEquality(t, nes.PPU.OAM[0x00], uint8(0x00))
	test.ExpectEquality(t, nes.PPU.OAM[0x80], uint8(0x80))
	test.ExpectEquality(t, nes.PPU.OAM[0xff], uint8(0xff))
}

func TestDMAFromRegisters(t *testing.T) {
	nes := newNES(t)

	// LDA #$20; STA $4014
	test.DemandSuccess(t, nes.Attach(program(0xa9, 0x20, 0x8d, 0x14, 0x40)))

	_, err := nes.Step()
	test.DemandSuccess(t, err)

	nes.PPU.Status |= ppu.StatusVBlank
	test.DemandSuccess(t, nes.PPU.VBlank())

	_, err = nes.Step()
	test.DemandSuccess(t, err)

	// reading PPUSTATUS during the copy clears the vblank flag. the first
	// copy of the register has the flag set and the later copies do not
	test.ExpectFailure(t, nes.PPU.VBlank())
	test.ExpectEquality(t, nes.PPU.OAM[0x02]&ppu.StatusVBlank, ppu.StatusVBlank)
	test.ExpectEquality(t, nes.PPU.OAM[0x0a]&ppu.StatusVBlank, uint8(0))
}

func TestRunContinueCheck(t *testing.T) {
	nes := newNES(t)

	// JMP $C000
	test.DemandSuccess(t, nes.Attach(program(0x4c, 0x00, 0xc0)))

	var steps int
	err := nes.Run(func() (govern.State, error) {
		steps++
		if steps >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, steps, 10)
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles+30)

	err = nes.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestRunForFrameCount(t *testing.T) {
	nes := newNES(t)

	// JMP $C000
	test.DemandSuccess(t, nes.Attach(program(0x4c, 0x00, 0xc0)))

	err := nes.RunForFrameCount(2, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.PPU.Frame, 2)
}

func TestSnapshot(t *testing.T) {
	nes := newNES(t)

	// LDA #$01; STA $10; LDA #$02; STA $10
	test.DemandSuccess(t, nes.Attach(program(0xa9, 0x01, 0x85, 0x10, 0xa9, 0x02, 0x85, 0x10)))

	_, _ = nes.Step()
	_, _ = nes.Step()
	state := nes.Snapshot()

	_, _ = nes.Step()
	_, _ = nes.Step()
	test.ExpectEquality(t, nes.Mem.Read(0x10), uint8(0x02))

	nes.Plumb(state)
	test.ExpectEquality(t, nes.Mem.Read(0x10), uint8(0x01))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc004))
	test.ExpectEquality(t, nes.Cycles, hardware.ResetCycles+5)

	// the restored CPU uses the restored memory
	_, _ = nes.Step()
	_, _ = nes.Step()
	test.ExpectEquality(t, nes.Mem.Read(0x10), uint8(0x02))
	test.ExpectEquality(t, state.Mem.Read(0x10), uint8(0x01))
}

func TestObserver(t *testing.T) {
	var count int
	obs := cpu.ObserverFunc(func(r execution.Result) {
		count++
	})

	nes := newNES(t, hardware.WithObserver(obs))
	test.DemandSuccess(t, nes.Attach(program(0xea, 0xea, 0xea)))
	for range 3 {
		_, err := nes.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, count, 3)
}

func TestAttachCartridge(t *testing.T) {
	var data []uint8
	data = append(data, 'N', 'E', 'S', 0x1a, 1, 1, 0, 0)
	data = append(data, make([]uint8, 8)...)

	bank := program(0xa9, 0x42)
	data = append(data, bank[:]...)
	for range 0x2000 {
		data = append(data, 0x55)
	}

	filename := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o600))

	nes := newNES(t)
	cl := cartridgeloader.NewLoader(filename)
	test.DemandSuccess(t, nes.AttachCartridge(&cl))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0xc000))
	test.ExpectEquality(t, nes.PPU.VRAM[0x0000], uint8(0x55))

	_, err := nes.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x42))

	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	test.ExpectFailure(t, nes.AttachCartridge(&cl))
}

func TestWithoutLogging(t *testing.T) {
	logger.Clear()
	nes := newNES(t, hardware.WithoutLogging())
	test.ExpectSuccess(t, nes.Attach(program()))
	test.ExpectEquality(t, logger.Len(), 0)

	nes = newNES(t)
	test.ExpectSuccess(t, nes.Attach(program()))
	test.ExpectInequality(t, logger.Len(), 0)
}
