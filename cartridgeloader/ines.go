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

package cartridgeloader

import (
	"errors"
	"io"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/hardware/memory"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
)

// Sentinal errors returned by Parse().
const (
	HeaderError    = "cartridgeloader: iNES header: %v"
	BankCountError = "cartridgeloader: unsupported number of program banks (%d)"
	TruncatedError = "cartridgeloader: file is truncated: %v"
)

// iNES header layout.
const (
	headerSize  = 16
	trainerSize = 512
	chrBankSize = 0x2000

	flags6Trainer = 0x04
)

var magic = [4]byte{'N', 'E', 'S', 0x1a}

// Cartridge is the parsed content of an iNES file.
type Cartridge struct {
	// program banks. always one or two banks
	Banks []memory.Bank

	// pattern data. may be empty if the cartridge uses pattern RAM
	CHR []uint8

	// mapper number taken from the high nibbles of flags 6 and 7. only
	// mapper zero is supported but the value is kept for information
	Mapper uint8

	// the trainer is skipped over and not loaded
	Trainer bool
}

// Parse reads an iNES file from the reader. Only files with one or two
// program banks are accepted.
func Parse(r io.Reader) (*Cartridge, error) {
	var header [headerSize]uint8
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, curated.Errorf(HeaderError, err)
	}

	if [4]byte(header[:4]) != magic {
		return nil, curated.Errorf(HeaderError, "magic bytes not found")
	}

	prgCount := int(header[4])
	if prgCount < 1 || prgCount > 2 {
		return nil, curated.Errorf(BankCountError, prgCount)
	}

	cart := &Cartridge{
		Banks:   make([]memory.Bank, prgCount),
		CHR:     make([]uint8, int(header[5])*chrBankSize),
		Mapper:  (header[7] & 0xf0) | (header[6] >> 4),
		Trainer: header[6]&flags6Trainer == flags6Trainer,
	}

	if cart.Trainer {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, curated.Errorf(TruncatedError, truncated(err))
		}
	}

	for i := range cart.Banks {
		if _, err := io.ReadFull(r, cart.Banks[i][:]); err != nil {
			return nil, curated.Errorf(TruncatedError, truncated(err))
		}
	}

	if _, err := io.ReadFull(r, cart.CHR); err != nil {
		return nil, curated.Errorf(TruncatedError, truncated(err))
	}

	return cart, nil
}

// ReadFull and CopyN return io.EOF if nothing at all could be read. we
// want to treat that the same as a partial read
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// ResetVector returns the address in the reset vector of the cartridge, as it
// will be seen by the CPU once the banks are attached.
func (cart *Cartridge) ResetVector() uint16 {
	b := cart.Banks[len(cart.Banks)-1]
	lo := b[memorymap.BankSize-4]
	hi := b[memorymap.BankSize-3]
	return uint16(hi)<<8 | uint16(lo)
}
