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

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/govern"
	"github.com/jetsetilly/gopher2a03/hardware"
)

// LeadTime is the period the emulation runs for before measurement begins.
const LeadTime = 2 * time.Second

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument.
func Check(output io.Writer, profile Profile, cl *cartridgeloader.Loader, realTime bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	nes, err := hardware.NewNES()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer nes.End()

	if err := nes.SetRealTime(realTime); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := nes.AttachCartridge(cl); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	m, err := measure(nes, profile, LeadTime, dur)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	fps, accuracy := CalcFPS(m.frames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, m.frames, dur.Seconds(), accuracy)

	mhz, accuracy := CalcClock(m.cycles, dur.Seconds())
	fmt.Fprintf(output, "%.3f MHz effective CPU clock %.1f%%\n", mhz, accuracy)

	return nil
}

// measurement is the progress of the emulation during the measured period.
type measurement struct {
	frames int
	cycles int
}

// measure runs the emulation for the lead time and then for the duration.
func measure(nes *hardware.NES, profile Profile, lead time.Duration, dur time.Duration) (measurement, error) {
	var start measurement

	runner := func() error {
		// the timer signals false when the lead time has elapsed and then
		// true when the measurement period has ended
		timerChan := make(chan bool, 2)
		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// checking the timerChan every instruction is expensive
		performanceBrake := 0

		return nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				start.frames = nes.PPU.Frame
				start.cycles = nes.Cycles
			default:
			}
			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return measurement{}, err
	}

	return measurement{
		frames: nes.PPU.Frame - start.frames,
		cycles: nes.Cycles - start.cycles,
	}, nil
}
