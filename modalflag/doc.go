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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "MONITOR")
//	_, _ = md.Parse()
//
// Sub-mode comparisons are case insensitive. The first sub-mode in the list
// is the default and is selected if the first argument after the flags is not
// a listed sub-mode.
//
// Once the mode has been decided, a new layer of flags can be added with
// NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "TRACE":
//		md.NewMode()
//		compare := md.AddString("compare", "", "reference trace")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		trace(md.RemainingArgs(), *compare)
//	}
//
// In addition to the flag types of the flag package, modalflag provides the
// AddAddress() function for 16 bit addresses given in hexadecimal.
package modalflag
