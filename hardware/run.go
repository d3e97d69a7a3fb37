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
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/govern"
)

// PerformanceBrake is the suggested number of instructions between expensive
// checks in a continue check function. A continue check is called after
// every instruction so anything more than a comparison should be throttled.
//
//	n++
//	if n%hardware.PerformanceBrake == 0 && expensiveCondition() {
//		return govern.Ending, nil
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is returned by Run() when the continue check returns a
// state that the run loop does not know how to handle.
const UnsupportedState = "nes: unsupported emulation state (%s)"

// Run executes instructions until the continue check returns govern.Ending
// or an error, or until an instruction fails. The speed of execution is
// governed by SetRealTime().
//
// A nil continue check runs the emulation until an instruction fails.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}
	return nes.loop(func() bool { return false }, continueCheck)
}

// RunForFrameCount is like Run() but also stops once the PPU has completed
// the given number of frames. The continue check is given the current frame
// number.
func (nes *NES) RunForFrameCount(frames int, continueCheck func(frame int) (govern.State, error)) error {
	target := nes.PPU.Frame + frames

	check := func() (govern.State, error) { return govern.Running, nil }
	if continueCheck != nil {
		check = func() (govern.State, error) { return continueCheck(nes.PPU.Frame) }
	}

	return nes.loop(func() bool { return nes.PPU.Frame >= target }, check)
}

func (nes *NES) loop(done func() bool, continueCheck func() (govern.State, error)) error {
	state := govern.Running

	for !done() {
		switch state {
		case govern.Ending:
			return nil
		case govern.Paused:
		case govern.Running, govern.Stepping:
			if _, err := nes.Step(); err != nil {
				return err
			}
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		var err error
		if state, err = continueCheck(); err != nil {
			return err
		}
	}

	return nil
}
