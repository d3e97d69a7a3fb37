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

// Package logger is the central log repository for the emulator. Entries are
// tagged and consecutive duplicate entries are collapsed into one, with a
// repeat count.
//
// The package level functions write to the central logger. Separate logger
// instances can be created with NewLogger(), which is useful for testing.
//
// Every log request is accompanied by a Permission. If the Permission does not
// allow logging then the entry is silently discarded. Use logger.Allow if the
// entry should always be made.
package logger
