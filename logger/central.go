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

package logger

import (
	"io"
)

// the application has a single log. packages write to it with the package
// level functions below rather than creating their own Logger
var central = NewLogger(maxCentral)

// the number of entries kept by the central log. enough for a monitor session
// without keeping every log entry of a long trace
const maxCentral = 256

// Log adds an entry to the central log.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central log.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central log.
func Clear() {
	central.Clear()
}

// Len returns the number of entries in the central log.
func Len() int {
	return central.Len()
}

// Write contents of the central log to io.Writer. Returns false if there was
// nothing to write.
func Write(output io.Writer) bool {
	return central.Write(output)
}

// Tail writes the last N entries of the central log to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries in the central log to io.Writer as they are
// made. A nil io.Writer stops the echoing.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
