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
	"bytes"
	"io"

	"github.com/jetsetilly/gopher2a03/monitor/easyterm/ansi"
)

// Colorizer is an io.Writer that adds terminal colors to log entries before
// passing them on. Tags are dim cyan. Entries that mention an error are
// written in red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

var (
	tagSeparator = []byte(": ")
	errorMarker  = []byte("error")
)

// Write implements the io.Writer interface. The returned count is of the
// uncolored input.
func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, ok := bytes.Cut(p, tagSeparator)
	if !ok {
		return c.out.Write(p)
	}

	var b bytes.Buffer
	b.WriteString(ansi.DimPens["cyan"])
	b.Write(tag)
	b.WriteString(ansi.NormalPen)
	b.Write(tagSeparator)

	body := bytes.TrimSuffix(detail, []byte{'\n'})
	if bytes.Contains(bytes.ToLower(body), errorMarker) {
		b.WriteString(ansi.Pens["red"])
		b.Write(body)
		b.WriteString(ansi.NormalPen)
	} else {
		b.Write(body)
	}
	if len(body) < len(detail) {
		b.WriteByte('\n')
	}

	if _, err := c.out.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
