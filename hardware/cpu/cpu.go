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
	"fmt"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/registers"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
)

// UnimplementedOpcode is returned by ExecuteInstruction() when the opcode has
// no handler. The CPU cannot continue.
const UnimplementedOpcode = "cpu: unimplemented opcode (%#02x) at (%#04x)"

// CompatibilityPC is the address the CPU starts at after a reset, when in
// compatibility mode.
const CompatibilityPC = uint16(0xc000)

// register values after a reset.
const (
	resetSP     = uint8(0xfd)
	resetStatus = registers.InterruptDisable
)

// CPU implements the 2A03 found in the NES. Register logic is implemented by
// the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem   cpubus.Memory
	table *[256]opcode

	observer Observer

	// start at CompatibilityPC instead of the reset vector
	compat bool

	// last result. the Final field is true if the instruction completed
	LastResult execution.Result
}

// Option is a functional option for NewCPU().
type Option func(mc *CPU)

// WithObserver attaches an Observer to the CPU.
func WithObserver(observer Observer) Option {
	return func(mc *CPU) {
		mc.observer = observer
	}
}

// WithCompatibilityMode makes the CPU begin execution at CompatibilityPC after
// a reset, ignoring the reset vector.
func WithCompatibilityMode() Option {
	return func(mc *CPU) {
		mc.compat = true
	}
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are in the reset state but the PC is not loaded until Reset() is
// called.
func NewCPU(mem cpubus.Memory, opts ...Option) (*CPU, error) {
	table, err := opcodes()
	if err != nil {
		return nil, curated.Errorf("cpu: %v", err)
	}

	mc := &CPU{
		mem:    mem,
		table:  table,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(resetSP),
		Status: registers.NewStatusRegister(),
	}
	mc.Status.Reset()

	for _, o := range opts {
		o(mc)
	}

	return mc, nil
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// SetObserver replaces the Observer attached to the CPU. A nil argument
// removes the observer.
func (mc *CPU) SetObserver(observer Observer) {
	mc.observer = observer
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// State returns a snapshot of the CPU registers.
func (mc *CPU) State() execution.State {
	return execution.State{
		PC: mc.PC.Address(),
		A:  mc.A.Value(),
		X:  mc.X.Value(),
		Y:  mc.Y.Value(),
		P:  mc.Status.Value(),
		SP: mc.SP.Value(),
	}
}

// Reset reinitialises all registers and loads the PC with the address in the
// reset vector. In compatibility mode the PC is loaded with CompatibilityPC.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.FromValue(resetStatus)

	if mc.compat {
		mc.PC.Load(CompatibilityPC)
	} else {
		mc.PC.Load(mc.mem.Read16(cpubus.Reset))
	}
}

// SetA loads a value into the A register and sets the zero and sign flags
// accordingly.
func (mc *CPU) SetA(v uint8) {
	mc.A.Load(v)
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
}

// SetX loads a value into the X register and sets the zero and sign flags
// accordingly.
func (mc *CPU) SetX(v uint8) {
	mc.X.Load(v)
	mc.Status.Zero = mc.X.IsZero()
	mc.Status.Sign = mc.X.IsNegative()
}

// SetY loads a value into the Y register and sets the zero and sign flags
// accordingly.
func (mc *CPU) SetY(v uint8) {
	mc.Y.Load(v)
	mc.Status.Zero = mc.Y.IsZero()
	mc.Status.Sign = mc.Y.IsNegative()
}

// ExecuteInstruction steps the CPU forward one instruction and returns the
// number of cycles the instruction took.
//
// An error is returned if the opcode has no handler. In that case, the PC is
// restored to the address of the opcode and no other state is changed.
func (mc *CPU) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Before = mc.State()

	opcode := mc.mem.Read(mc.PC.Increment())
	op := &mc.table[opcode]
	if op.handler == nil {
		mc.PC.Load(mc.LastResult.Address)
		return 0, curated.Errorf(UnimplementedOpcode, opcode, mc.LastResult.Address)
	}

	mc.LastResult.Defn = op.defn
	mc.LastResult.ByteCount = 1

	cycles := op.handler(mc)

	mc.LastResult.Cycles = cycles
	mc.LastResult.After = mc.State()
	mc.LastResult.Final = true

	if mc.observer != nil {
		mc.observer.Observe(mc.LastResult)
	}

	return cycles, nil
}

// fetch the next byte of the instruction and advance the PC. the byte is
// recorded in the LastResult.
func (mc *CPU) fetch() uint8 {
	v := mc.mem.Read(mc.PC.Increment())
	switch mc.LastResult.ByteCount {
	case 1:
		mc.LastResult.InstructionData = uint16(v)
	case 2:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(mc.SP.Address(), v)
	mc.SP.Decrement()
}

func (mc *CPU) pull() uint8 {
	mc.SP.Increment()
	return mc.mem.Read(mc.SP.Address())
}

// 16 bit values are pushed high byte first
func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) pull16() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Snapshot creates a copy of the CPU in its current state. The copy shares the
// memory bus and the observer.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}
