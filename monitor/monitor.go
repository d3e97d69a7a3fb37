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
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/govern"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/monitor/easyterm"
	"github.com/jetsetilly/gopher2a03/monitor/easyterm/ansi"
	"github.com/jetsetilly/gopher2a03/script"
	"github.com/jetsetilly/gopher2a03/tracer"
)

// MaxHistory is the number of snapshots kept for stepping backwards.
const MaxHistory = 256

// Pager is implemented by terminals that can pause long output until a key
// is pressed. The easyterm.Terminal type satisfies this interface.
type Pager interface {
	Rows() int
	ReadKey() (byte, error)
}

// Monitor is a line based machine-code monitor.
type Monitor struct {
	nes *hardware.NES

	input  *bufio.Scanner
	output io.Writer

	pager     Pager
	interrupt <-chan struct{}
	color     bool

	// snapshots taken before every step. the most recent is at the end
	history []*hardware.State

	breakpoints map[uint16]bool
	halt        *script.Condition

	// print a trace line for every instruction
	trace bool
}

// Option is a functional option for NewMonitor().
type Option func(m *Monitor)

// WithPager pages long output with the supplied Pager.
func WithPager(p Pager) Option {
	return func(m *Monitor) {
		m.pager = p
	}
}

// WithInterrupt stops a RUN command when the channel receives.
func WithInterrupt(interrupt <-chan struct{}) Option {
	return func(m *Monitor) {
		m.interrupt = interrupt
	}
}

// WithColor styles the prompt and error messages with ANSI sequences.
func WithColor() Option {
	return func(m *Monitor) {
		m.color = true
	}
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(nes *hardware.NES, input io.Reader, output io.Writer, opts ...Option) *Monitor {
	m := &Monitor{
		nes:         nes,
		input:       bufio.NewScanner(input),
		output:      output,
		breakpoints: make(map[uint16]bool),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Start the monitor's input loop. Returns when the QUIT command is given or
// when the input is exhausted.
func (m *Monitor) Start() error {
	defer func() {
		if m.halt != nil {
			m.halt.Close()
		}
	}()

	for {
		m.prompt()

		if !m.input.Scan() {
			if err := m.input.Err(); err != nil {
				return curated.Errorf("monitor: %v", err)
			}
			return nil
		}

		quit, err := m.command(m.input.Text())
		if err != nil {
			m.printError(err)
		}
		if quit {
			return nil
		}
	}
}

func (m *Monitor) prompt() {
	p := fmt.Sprintf("[%s] > ", m.nes.CPU.PC)
	if e, err := disassembly.Decode(m.nes, m.nes.CPU.PC.Address()); err == nil {
		p = fmt.Sprintf("[%s %s] > ", m.nes.CPU.PC, e.Result.String())
		if e.Level == disassembly.EntryLevelUnknown {
			p = fmt.Sprintf("[%s ???] > ", m.nes.CPU.PC)
		}
	}
	if m.color {
		p = fmt.Sprintf("%s%s%s", ansi.Pens["cyan"], p, ansi.NormalPen)
	}
	io.WriteString(m.output, p)
}

func (m *Monitor) printError(err error) {
	if m.color {
		fmt.Fprintf(m.output, "%s%s%s\n", ansi.Pens["red"], err, ansi.NormalPen)
		return
	}
	fmt.Fprintln(m.output, err)
}

// printPaged prints the lines, pausing every screenful if a pager has been
// supplied.
func (m *Monitor) printPaged(s string) {
	lines := strings.Split(s, "\n")

	rows := 0
	if m.pager != nil {
		rows = m.pager.Rows() - 1
	}

	for i, l := range lines {
		if rows > 0 && i > 0 && i%rows == 0 {
			io.WriteString(m.output, "-- more --")
			key, err := m.pager.ReadKey()
			io.WriteString(m.output, "\r"+ansi.ClearLine)
			if err != nil || easyterm.IsAbort(key) {
				return
			}
		}
		fmt.Fprintln(m.output, l)
	}
}

func parseAddress(s string) (uint16, error) {
	var a modalflag.Address
	if err := a.Set(s); err != nil {
		return 0, curated.Errorf("monitor: %s is %v", s, err)
	}
	return a.Value, nil
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, curated.Errorf("monitor: %s is not a valid count", args[0])
	}
	return n, nil
}

// command runs a single line of input. returns true if the monitor should
// quit.
func (m *Monitor) command(line string) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}

	cmd := normaliseCommand(tokens[0])
	args := tokens[1:]

	switch cmd {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		if len(args) > 0 {
			printHelp(m.output, args[0])
		} else {
			printHelp(m.output, "")
		}

	case cmdStep:
		n, err := parseCount(args)
		if err != nil {
			return false, err
		}
		for range n {
			if err := m.step(true); err != nil {
				return false, err
			}
		}

	case cmdBack:
		n, err := parseCount(args)
		if err != nil {
			return false, err
		}
		if err := m.back(n); err != nil {
			return false, err
		}
		fmt.Fprintln(m.output, m.nes.CPU)

	case cmdRun:
		return false, m.run()

	case cmdReset:
		m.nes.Reset()
		m.history = m.history[:0]
		fmt.Fprintln(m.output, m.nes.CPU)

	case cmdCPU:
		fmt.Fprintf(m.output, "%s CYC:%d\n", m.nes.CPU, m.nes.Cycles)

	case cmdPPU:
		fmt.Fprintln(m.output, m.nes.PPU)

	case cmdLast:
		if !m.nes.CPU.LastResult.Final {
			return false, curated.Errorf("monitor: no instruction has been executed")
		}
		r := m.nes.CPU.LastResult
		fmt.Fprintln(m.output, tracer.Line(r, m.nes.Cycles-r.Cycles))

	case cmdDisasm:
		addr := m.nes.CPU.PC.Address()
		if len(args) > 0 {
			var err error
			addr, err = parseAddress(args[0])
			if err != nil {
				return false, err
			}
		}
		n := 10
		if len(args) > 1 {
			var err error
			n, err = parseCount(args[1:])
			if err != nil {
				return false, err
			}
		}
		entries, err := disassembly.Linear(m.nes, addr, n)
		if err != nil {
			return false, err
		}
		s := strings.Builder{}
		for _, e := range entries {
			if e.Result.Address == m.nes.CPU.PC.Address() {
				s.WriteString("> ")
			} else {
				s.WriteString("  ")
			}
			s.WriteString(e.String())
			s.WriteString("\n")
		}
		m.printPaged(strings.TrimRight(s.String(), "\n"))

	case cmdPeek:
		if len(args) == 0 {
			return false, curated.Errorf("monitor: %s requires an address", cmd)
		}
		for _, a := range args {
			addr, err := parseAddress(a)
			if err != nil {
				return false, err
			}
			primary := m.nes.Mem.Translate(addr)
			fmt.Fprintf(m.output, "$%04X -> $%04X = $%02X  %s\n", addr, primary, m.nes.Peek(addr), describe(primary))
		}

	case cmdPoke:
		if len(args) != 2 {
			return false, curated.Errorf("monitor: %s requires an address and a value", cmd)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, err
		}
		v, err := parseAddress(args[1])
		if err != nil || v > 0xff {
			return false, curated.Errorf("monitor: %s is not a valid byte", args[1])
		}
		m.nes.Mem.Poke(addr, uint8(v))

	case cmdRAM:
		var addr uint16
		if len(args) > 0 {
			var err error
			addr, err = parseAddress(args[0])
			if err != nil {
				return false, err
			}
		}
		m.printPaged(m.nes.Mem.Dump(addr))

	case cmdMap:
		m.printPaged(strings.TrimSuffix(memorymap.Summary(), "\n"))

	case cmdBreak:
		if len(args) == 0 {
			return false, curated.Errorf("monitor: %s requires an address", cmd)
		}
		for _, a := range args {
			addr, err := parseAddress(a)
			if err != nil {
				return false, err
			}
			m.breakpoints[addr] = true
		}

	case cmdDrop:
		if len(args) == 0 {
			return false, curated.Errorf("monitor: %s requires an address", cmd)
		}
		addr, err := parseAddress(args[0])
		if err != nil {
			return false, err
		}
		if !m.breakpoints[addr] {
			return false, curated.Errorf("monitor: no breakpoint at $%04X", addr)
		}
		delete(m.breakpoints, addr)

	case cmdList:
		m.list()

	case cmdClear:
		clear(m.breakpoints)
		m.setHalt("")

	case cmdHalt:
		// the expression is the remainder of the line, spaces included
		expr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), tokens[0]))
		if err := m.setHalt(expr); err != nil {
			return false, err
		}

	case cmdTrace:
		if len(args) == 0 {
			m.trace = !m.trace
		} else {
			switch strings.ToUpper(args[0]) {
			case "ON":
				m.trace = true
			case "OFF":
				m.trace = false
			default:
				return false, curated.Errorf("monitor: %s expects ON or OFF", cmd)
			}
		}
		fmt.Fprintf(m.output, "trace: %v\n", m.trace)

	case cmdLog:
		n := 10
		if len(args) > 0 {
			var err error
			n, err = parseCount(args)
			if err != nil {
				return false, err
			}
		}
		logger.Tail(m.output, n)

	default:
		return false, curated.Errorf("monitor: unrecognised command (%s)", tokens[0])
	}

	return false, nil
}

func (m *Monitor) setHalt(expr string) error {
	if m.halt != nil {
		m.halt.Close()
		m.halt = nil
	}
	if expr == "" {
		return nil
	}

	// the NES is used for peeking rather than the memory directly because
	// stepping backwards replaces the memory instance
	c, err := script.NewCondition(expr, m.nes)
	if err != nil {
		return err
	}
	m.halt = c
	return nil
}

func (m *Monitor) list() {
	if len(m.breakpoints) == 0 && m.halt == nil {
		fmt.Fprintln(m.output, "no breakpoints or halt condition")
		return
	}

	bps := make([]uint16, 0, len(m.breakpoints))
	for a := range m.breakpoints {
		bps = append(bps, a)
	}
	slices.Sort(bps)
	for _, a := range bps {
		fmt.Fprintf(m.output, "break $%04X\n", a)
	}

	if m.halt != nil {
		fmt.Fprintf(m.output, "halt %s\n", m.halt)
	}
}

// step the emulation one instruction. a snapshot is taken so that the step
// can be undone. the trace line is printed if echo is true or if tracing is
// on.
func (m *Monitor) step(echo bool) error {
	m.history = append(m.history, m.nes.Snapshot())
	if len(m.history) > MaxHistory {
		m.history = m.history[1:]
	}

	before := m.nes.Cycles
	if _, err := m.nes.Step(); err != nil {
		m.history = m.history[:len(m.history)-1]
		return err
	}

	if echo || m.trace {
		fmt.Fprintln(m.output, tracer.Line(m.nes.CPU.LastResult, before))
	}

	return nil
}

// back restores the state from n steps ago.
func (m *Monitor) back(n int) error {
	if len(m.history) == 0 {
		return curated.Errorf("monitor: no history to step back through")
	}
	if n > len(m.history) {
		n = len(m.history)
	}

	idx := len(m.history) - n
	m.nes.Plumb(m.history[idx])
	m.history = m.history[:idx]

	return nil
}

// run the emulation until a breakpoint or halt condition is met, until the
// interrupt channel receives or until an error occurs.
func (m *Monitor) run() error {
	m.history = append(m.history, m.nes.Snapshot())
	if len(m.history) > MaxHistory {
		m.history = m.history[1:]
	}

	var reason string
	performanceBrake := 0

	err := m.nes.Run(func() (govern.State, error) {
		if m.trace {
			r := m.nes.CPU.LastResult
			fmt.Fprintln(m.output, tracer.Line(r, m.nes.Cycles-r.Cycles))
		}

		pc := m.nes.CPU.PC.Address()
		if m.breakpoints[pc] {
			reason = fmt.Sprintf("break at $%04X", pc)
			return govern.Ending, nil
		}

		if m.halt != nil {
			ok, err := m.halt.Check(m.nes.CPU.State(), m.nes.Cycles)
			if err != nil {
				return govern.Ending, err
			}
			if ok {
				reason = fmt.Sprintf("halt: %s", m.halt)
				return govern.Ending, nil
			}
		}

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-m.interrupt:
				reason = "interrupted"
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "monitor", "%s (PC=%s)", reason, m.nes.CPU.PC)
	fmt.Fprintln(m.output, reason)
	fmt.Fprintln(m.output, m.nes.CPU)

	return nil
}

// describe names a primary address. peripheral registers are named
// individually, anything else by its memory area.
func describe(primary uint16) string {
	if r, ok := cpubus.Symbols[primary]; ok {
		return string(r)
	}
	_, area := memorymap.MapAddress(primary)
	return area.String()
}
