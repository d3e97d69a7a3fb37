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

package performance

import "github.com/jetsetilly/gopher2a03/hardware/clocks"

// CalcFPS returns the average frame rate over a period measured in seconds
// and how that rate compares, as a percentage, with the NTSC frame rate.
//
// A zero or negative duration produces zero values.
func CalcFPS(frames int, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	fps := float64(frames) / seconds
	return fps, fps / clocks.FramesPerSecond * 100
}

// CalcClock returns the effective CPU clock speed in MHz over a period
// measured in seconds and how that speed compares, as a percentage, with the
// NTSC CPU clock.
func CalcClock(cycles int, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	mhz := float64(cycles) / seconds / 1e6
	return mhz, mhz / clocks.NTSC * 100
}
