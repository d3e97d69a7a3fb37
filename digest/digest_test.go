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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher2a03/digest"
	"github.com/jetsetilly/gopher2a03/hardware/cpu/execution"
	"github.com/jetsetilly/gopher2a03/test"
)

func results() []execution.Result {
	return []execution.Result{
		{Address: 0xc000, Cycles: 2, Before: execution.State{PC: 0xc000, P: 0x24, SP: 0xfd}, After: execution.State{PC: 0xc002, A: 0x05, P: 0x24, SP: 0xfd}},
		{Address: 0xc002, Cycles: 2, Before: execution.State{PC: 0xc002, A: 0x05, P: 0x24, SP: 0xfd}, After: execution.State{PC: 0xc003, A: 0x05, X: 0x01, P: 0x24, SP: 0xfd}},
	}
}

func TestCPUDigest(t *testing.T) {
	a := digest.NewCPU()
	b := digest.NewCPU()
	empty := a.Hash()

	for _, r := range results() {
		a.Observe(r)
		b.Observe(r)
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Instructions(), 2)

	// a single difference in any instruction changes the digest
	c := digest.NewCPU()
	rs := results()
	rs[0].After.P = 0x26
	for _, r := range rs {
		c.Observe(r)
	}
	test.ExpectInequality(t, c.Hash(), a.Hash())

	// the digest is chained so the order of instructions matters
	d := digest.NewCPU()
	rs = results()
	d.Observe(rs[1])
	d.Observe(rs[0])
	test.ExpectInequality(t, d.Hash(), a.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Instructions(), 0)
}

func TestDigestInterface(t *testing.T) {
	var d digest.Digest = digest.NewCPU()
	test.ExpectEquality(t, len(d.Hash()), 40)
}
