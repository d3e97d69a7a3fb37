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

// Package statsview serves live runtime statistics of the emulator process
// over HTTP, using github.com/go-echarts/statsview. Heap, goroutine and GC
// charts are at /debug/statsview and the standard pprof endpoints are at
// /debug/pprof/.
//
// The server is only compiled in when the statsview build tag is given:
//
//	go build -tags statsview .
//
// Without the tag Launch() prints a notice and Available() returns false.
package statsview

// Address the statistics server listens on.
const Address = "localhost:12603"
