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

import "github.com/jetsetilly/gopher2a03/hardware/cpu/execution"

// Observer is notified after every successfully executed instruction.
type Observer interface {
	Observe(result execution.Result)
}

// ObserverFunc allows an ordinary function to be used as an Observer.
type ObserverFunc func(result execution.Result)

// Observe implements the Observer interface.
func (f ObserverFunc) Observe(result execution.Result) {
	f(result)
}

// Observers forwards results to every Observer in the list, in order.
type Observers []Observer

// Observe implements the Observer interface.
func (o Observers) Observe(result execution.Result) {
	for _, ob := range o {
		ob.Observe(result)
	}
}
