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

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
)

// Sentinal errors.
const (
	CompileError    = "script: compile: %v"
	EvaluationError = "script: evaluation: %v"
)

// Peeker is implemented by types that can read memory without side effects.
type Peeker interface {
	Peek(address uint16) uint8
}

// Condition is a compiled halt condition.
type Condition struct {
	expr string

	L  *lua.LState
	fn *lua.LFunction

	mem Peeker
}

// NewCondition compiles the expression. The Close() function should be called
// when the condition is no longer required.
func NewCondition(expr string, mem Peeker) (*Condition, error) {
	c := &Condition{
		expr: expr,
		L:    lua.NewState(lua.Options{SkipOpenLibs: true}),
		mem:  mem,
	}

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
	} {
		c.L.Push(c.L.NewFunction(lib.open))
		c.L.Push(lua.LString(lib.name))
		if err := c.L.PCall(1, 0, nil); err != nil {
			c.L.Close()
			return nil, curated.Errorf(CompileError, err)
		}
	}

	c.L.SetGlobal("peek", c.L.NewFunction(c.peek))

	var err error
	c.fn, err = c.L.LoadString("return (" + expr + ")")
	if err != nil {
		c.L.Close()
		return nil, curated.Errorf(CompileError, err)
	}

	return c, nil
}

func (c *Condition) peek(L *lua.LState) int {
	address := L.CheckInt(1)
	if address < 0 || address > 0xffff {
		L.ArgError(1, "address out of range")
		return 0
	}
	L.Push(lua.LNumber(c.mem.Peek(uint16(address))))
	return 1
}

func (c *Condition) String() string {
	return c.expr
}

// Check evaluates the condition for the CPU state and cycle count.
func (c *Condition) Check(state execution.State, cycles int) (bool, error) {
	c.L.SetGlobal("a", lua.LNumber(state.A))
	c.L.SetGlobal("x", lua.LNumber(state.X))
	c.L.SetGlobal("y", lua.LNumber(state.Y))
	c.L.SetGlobal("p", lua.LNumber(state.P))
	c.L.SetGlobal("sp", lua.LNumber(state.SP))
	c.L.SetGlobal("pc", lua.LNumber(state.PC))
	c.L.SetGlobal("cycles", lua.LNumber(cycles))

	c.L.Push(c.fn)
	if err := c.L.PCall(0, 1, nil); err != nil {
		return false, curated.Errorf(EvaluationError, err)
	}

	ret := c.L.Get(-1)
	c.L.Pop(1)

	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state.
func (c *Condition) Close() {
	c.L.Close()
}
