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

// Package cartridgeloader finds, fetches and parses the cartridge data that
// is attached to the emulated NES.
//
// A Loader names the cartridge. The name is either a local path or a URL
// with the file, http or https scheme:
//
//	cl := cartridgeloader.NewLoader("https://example.com/nestest.nes")
//	if err := cl.Load(); err != nil {
//		return err
//	}
//	cart, err := cl.Cartridge()
//
// Zip archives are opened and the first file inside with a recognised
// extension is used. The sha1 hash of the cartridge data is recorded in the
// Loader and, if a hash was supplied beforehand, checked against it.
//
// Parse() decodes iNES data directly from an io.Reader.
package cartridgeloader
