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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		runFrame()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher2a03/curated"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	secondsPerFrame atomic.Int64

	tick chan bool
	done chan bool

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type. The Close() function should be called when the limiter is no longer
// required.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		done: make(chan bool),
	}
	lim.Measured.Store(float32(0.0))

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	lim.measureTime = time.Now()

	// run ticker concurrently. the sleep duration is adjusted on every tick to
	// account for drift
	go func() {
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}

			time.Sleep(adjusted)

			nt := time.Now()
			spf := time.Duration(lim.secondsPerFrame.Load())
			adjusted -= nt.Sub(t) - spf
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > spf*2 {
				adjusted = spf
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: invalid frame rate (%d)", framesPerSecond)
	}
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick

	lim.measureCt++
	t := time.Now()
	if d := t.Sub(lim.measureTime); d >= time.Second {
		lim.Measured.Store(float32(lim.measureCt) / float32(d.Seconds()))
		lim.measureTime = t
		lim.measureCt = 0
	}
}

// Close stops the ticker goroutine. Wait() must not be called after Close().
func (lim *FpsLimiter) Close() {
	close(lim.done)
}
