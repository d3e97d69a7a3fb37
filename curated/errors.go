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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curatedError keeps the unformatted pattern alongside the values so that the
// error can later be identified by its pattern.
type curatedError struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern argument is a fmt format
// string. It is also the identity of the error and is what Is() and Has()
// test against, so callers should use a package level constant or a literal
// that is not built at runtime.
func Errorf(pattern string, values ...any) error {
	return curatedError{
		pattern: pattern,
		values:  values,
	}
}

// Error formats the message. Where a curated error wraps another with the
// same leading tag the repeated tag is removed, so "cpu: cpu: bad opcode"
// becomes "cpu: bad opcode".
func (e curatedError) Error() string {
	msg := fmt.Sprintf(e.pattern, e.values...)

	head, tail, ok := strings.Cut(msg, ": ")
	if ok && strings.HasPrefix(tail, head+": ") {
		return tail
	}
	return msg
}

// Unwrap returns the first value that is an error.
func (e curatedError) Unwrap() error {
	for _, v := range e.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// IsAny returns true if err is a curated error. Wrapped errors are not
// considered.
func IsAny(err error) bool {
	_, ok := err.(curatedError)
	return ok
}

// Is returns true if err is a curated error created with pattern. Wrapped
// errors are not considered.
func Is(err error, pattern string) bool {
	e, ok := err.(curatedError)
	return ok && e.pattern == pattern
}

// Has is like Is() but also considers every error in the wrap chain.
func Has(err error, pattern string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if Is(err, pattern) {
			return true
		}
	}
	return false
}
