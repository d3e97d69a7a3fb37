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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher2a03/performance/limiter"
	"github.com/jetsetilly/gopher2a03/test"
)

// tolerance of measurement
const measurementTolerance = 0.1

func TestLimiter(t *testing.T) {
	const fps = 60

	lim, err := limiter.NewFPSLimiter(fps)
	test.DemandSuccess(t, err)
	defer lim.Close()

	start := time.Now()
	for range fps * 2 {
		lim.Wait()
	}
	elapsed := time.Since(start).Seconds()
	test.ExpectSuccess(t, elapsed >= 2*(1.0-measurementTolerance), elapsed)

	rate := lim.Measured.Load().(float32)
	test.ExpectSuccess(t, rate >= fps*(1.0-measurementTolerance) && rate <= fps*(1.0+measurementTolerance), rate)
}

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)
}
