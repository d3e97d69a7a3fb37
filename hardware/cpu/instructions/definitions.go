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

package instructions

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed instructions.csv
var definitionsCSV string

var addressingModes = map[string]AddressingMode{
	"IMPLIED":             Implied,
	"ACCUMULATOR":         Accumulator,
	"IMMEDIATE":           Immediate,
	"RELATIVE":            Relative,
	"ABSOLUTE":            Absolute,
	"ZERO_PAGE":           ZeroPage,
	"INDIRECT":            Indirect,
	"INDEXED_INDIRECT":    IndexedIndirect,
	"INDIRECT_INDEXED":    IndirectIndexed,
	"ABSOLUTE_INDEXED_X":  AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  AbsoluteIndexedY,
	"ZERO_PAGE_INDEXED_X": ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y": ZeroPageIndexedY,
}

var effects = map[string]EffectCategory{
	"READ":       Read,
	"WRITE":      Write,
	"RMW":        RMW,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"INTERRUPT":  Interrupt,
}

// the table is parsed once and shared. the definitions are never modified
// after parsing.
var definitions = sync.OnceValues(func() ([256]*Definition, error) {
	return parseDefinitions(strings.NewReader(definitionsCSV))
})

// GetDefinitions returns the table of instruction definitions for the 2A03,
// indexed by opcode. Entries for opcodes with no definition are nil.
func GetDefinitions() ([256]*Definition, error) {
	return definitions()
}

func parseDefinitions(r io.Reader) ([256]*Definition, error) {
	var table [256]*Definition

	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the undocumented field is optional
	csvr.FieldsPerRecord = -1

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table, fmt.Errorf("instructions: %w", err)
		}

		line, _ := csvr.FieldPos(0)

		if len(rec) != 6 && len(rec) != 7 {
			return table, fmt.Errorf("instructions: wrong number of fields in definition [line %d]", line)
		}

		defn := &Definition{}

		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return table, fmt.Errorf("instructions: invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if table[defn.OpCode] != nil {
			return table, fmt.Errorf("instructions: duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		defn.Mnemonic = rec[1]

		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return table, fmt.Errorf("instructions: invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		var ok bool

		defn.AddressingMode, ok = addressingModes[rec[3]]
		if !ok {
			return table, fmt.Errorf("instructions: invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		switch rec[4] {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
		default:
			return table, fmt.Errorf("instructions: invalid page sensitivity for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		defn.Effect, ok = effects[rec[5]]
		if !ok {
			return table, fmt.Errorf("instructions: unknown effect for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
		}

		if len(rec) == 7 {
			if rec[6] != "UNDOCUMENTED" {
				return table, fmt.Errorf("instructions: unknown flag for %#02x (%s) [line %d]", defn.OpCode, rec[6], line)
			}
			defn.Undocumented = true
		}

		table[defn.OpCode] = defn
	}

	return table, nil
}
