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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors. For
// example:
//
//	e := curated.Errorf("cpu: unimplemented opcode (%#02x) at (%#04x)", opcode, pc)
//
//	if curated.Is(e, "cpu: unimplemented opcode (%#02x) at (%#04x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Wrapping happens by passing an error as one of the
// placeholder values:
//
//	f := curated.Errorf("nes: %v", e)
//
// Curated errors also support the Unwrap() convention so the errors package
// can look inside a chain. The first error found in the placeholder values is
// the wrapped error.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not begin with duplicate adjacent parts.
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// Patterns that are tested for should be stored as a const string, suitably
// named and commented.
package curated
