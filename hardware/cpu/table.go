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
	"sync"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/instructions"
)

// handler executes an instruction whose opcode has already been read. It
// returns the number of cycles consumed.
type handler func(mc *CPU) int

type opcode struct {
	defn    *instructions.Definition
	handler handler
}

// the opcode table is built once and shared by every CPU instance.
var opcodes = sync.OnceValues(func() (*[256]opcode, error) {
	defns, err := instructions.GetDefinitions()
	if err != nil {
		return nil, err
	}

	var table [256]opcode
	for i, defn := range defns {
		if defn == nil {
			continue
		}
		h, err := handlerFor(defn)
		if err != nil {
			return nil, err
		}
		table[i] = opcode{defn: defn, handler: h}
	}

	return &table, nil
})

// handlerFor builds the handler for an instruction definition from the
// addressing mode and effect category.
func handlerFor(defn *instructions.Definition) (handler, error) {
	cycles := defn.Cycles

	switch defn.AddressingMode {
	case instructions.Implied:
		switch defn.Effect {
		case instructions.Interrupt, instructions.Subroutine:
			if op, ok := controlOps[defn.Mnemonic]; ok {
				return func(mc *CPU) int {
					op(mc)
					return cycles
				}, nil
			}
		default:
			if op, ok := impliedOps[defn.Mnemonic]; ok {
				return func(mc *CPU) int {
					op(mc)
					return cycles
				}, nil
			}
		}

	case instructions.Accumulator:
		if op, ok := rmwOps[defn.Mnemonic]; ok {
			return func(mc *CPU) int {
				mc.A.Load(op(mc, mc.A.Value()))
				return cycles
			}, nil
		}

	case instructions.Relative:
		if cond, ok := branchConditions[defn.Mnemonic]; ok {
			return branch(cond, cycles), nil
		}

	default:
		return resolvedHandler(defn, resolverFor(defn.AddressingMode))
	}

	return nil, curated.Errorf("no operation for %s (%s)", defn.Mnemonic, defn.AddressingMode)
}

// handlers for instructions that have an operand address (or an immediate
// value).
func resolvedHandler(defn *instructions.Definition, resolve resolver) (handler, error) {
	cycles := defn.Cycles
	pageSensitive := defn.PageSensitive

	switch defn.Effect {
	case instructions.Read:
		op, ok := readOps[defn.Mnemonic]
		if !ok {
			break
		}
		return func(mc *CPU) int {
			a := resolve(mc)
			v := a.value
			if !a.immediate {
				v = mc.mem.Read(a.address)
			}
			op(mc, v)
			if pageSensitive && a.pageFault {
				mc.LastResult.PageFault = true
				return cycles + 1
			}
			return cycles
		}, nil

	case instructions.Write:
		op, ok := writeOps[defn.Mnemonic]
		if !ok {
			break
		}
		return func(mc *CPU) int {
			a := resolve(mc)
			mc.mem.Write(a.address, op(mc))
			return cycles
		}, nil

	case instructions.RMW:
		op, ok := rmwOps[defn.Mnemonic]
		if !ok {
			break
		}
		return func(mc *CPU) int {
			a := resolve(mc)
			mc.mem.Write(a.address, op(mc, mc.mem.Read(a.address)))
			return cycles
		}, nil

	case instructions.Flow:
		// JMP is the only non-branch flow instruction
		return func(mc *CPU) int {
			mc.PC.Load(resolve(mc).address)
			return cycles
		}, nil

	case instructions.Subroutine:
		// JSR. the pushed address is the last byte of the instruction
		return func(mc *CPU) int {
			a := resolve(mc)
			mc.push16(mc.PC.Address() - 1)
			mc.PC.Load(a.address)
			return cycles
		}, nil
	}

	return nil, curated.Errorf("no operation for %s (%s)", defn.Mnemonic, defn.AddressingMode)
}

// branch instructions take one extra cycle if the branch is taken and another
// if the destination is in a different page to the following instruction.
func branch(cond func(mc *CPU) bool, cycles int) handler {
	return func(mc *CPU) int {
		offset := int8(mc.fetch())
		if !cond(mc) {
			return cycles
		}

		mc.LastResult.BranchSuccess = true
		if mc.PC.Offset(offset) {
			mc.LastResult.PageFault = true
			return cycles + 2
		}
		return cycles + 1
	}
}
