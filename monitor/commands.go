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

package monitor

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// the list of commands understood by the monitor
const (
	cmdStep   = "STEP"
	cmdBack   = "BACK"
	cmdRun    = "RUN"
	cmdReset  = "RESET"
	cmdCPU    = "CPU"
	cmdPPU    = "PPU"
	cmdLast   = "LAST"
	cmdDisasm = "DISASM"
	cmdPeek   = "PEEK"
	cmdPoke   = "POKE"
	cmdRAM    = "RAM"
	cmdMap    = "MAP"
	cmdBreak  = "BREAK"
	cmdDrop   = "DROP"
	cmdList   = "LIST"
	cmdClear  = "CLEAR"
	cmdHalt   = "HALT"
	cmdTrace  = "TRACE"
	cmdLog    = "LOG"
	cmdHelp   = "HELP"
	cmdQuit   = "QUIT"
)

var helps = map[string]string{
	cmdStep:   "Step forward one instruction, or by the number of instructions given",
	cmdBack:   "Step backwards one instruction, or by the number of instructions given",
	cmdRun:    "Run until a breakpoint or halt condition is met. Ctrl-C interrupts",
	cmdReset:  "Reset the NES",
	cmdCPU:    "Display the current state of the CPU",
	cmdPPU:    "Display the current state of the PPU registers",
	cmdLast:   "Prints the trace line of the last instruction",
	cmdDisasm: "Disassemble from the address (default PC) for the number of instructions (default 10)",
	cmdPeek:   "Inspect an individual memory address. The register name or memory area is shown",
	cmdPoke:   "Modify an individual memory address",
	cmdRAM:    "Display the page of memory containing the address (default $0000)",
	cmdMap:    "Display the memory map",
	cmdBreak:  "Halt execution when the PC reaches the address",
	cmdDrop:   "Drop the breakpoint at the address",
	cmdList:   "List current breakpoints and the halt condition",
	cmdClear:  "Clear all breakpoints and the halt condition",
	cmdHalt:   "Halt execution when the Lua expression is true. No expression removes the condition",
	cmdTrace:  "Print a trace line for every instruction (ON or OFF)",
	cmdLog:    "Print the most recent log entries",
	cmdHelp:   "Lists commands or describes the named command",
	cmdQuit:   "Exits the monitor",
}

// some commands have aliases
var aliases = map[string]string{
	"S": cmdStep,
	"B": cmdBack,
	"R": cmdRun,
	"Q": cmdQuit,
	"?": cmdHelp,
	"D": cmdDisasm,
}

func normaliseCommand(s string) string {
	s = strings.ToUpper(s)
	if a, ok := aliases[s]; ok {
		return a
	}
	return s
}

func printHelp(output io.Writer, cmd string) {
	if cmd != "" {
		cmd = normaliseCommand(cmd)
		if h, ok := helps[cmd]; ok {
			fmt.Fprintf(output, "%s: %s\n", cmd, h)
			return
		}
		fmt.Fprintf(output, "no help for %s\n", cmd)
		return
	}

	cmds := make([]string, 0, len(helps))
	for k := range helps {
		cmds = append(cmds, k)
	}
	slices.Sort(cmds)

	fmt.Fprintln(output, strings.Join(cmds, " "))
}
