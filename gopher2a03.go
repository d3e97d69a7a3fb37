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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher2a03/cartridgeloader"
	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/digest"
	"github.com/jetsetilly/gopher2a03/disassembly"
	"github.com/jetsetilly/gopher2a03/govern"
	"github.com/jetsetilly/gopher2a03/hardware"
	"github.com/jetsetilly/gopher2a03/hardware/cpu"
	"github.com/jetsetilly/gopher2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher2a03/logger"
	"github.com/jetsetilly/gopher2a03/modalflag"
	"github.com/jetsetilly/gopher2a03/monitor"
	"github.com/jetsetilly/gopher2a03/monitor/easyterm"
	"github.com/jetsetilly/gopher2a03/performance"
	"github.com/jetsetilly/gopher2a03/script"
	"github.com/jetsetilly/gopher2a03/statsview"
	"github.com/jetsetilly/gopher2a03/tracer"
	"github.com/jetsetilly/gopher2a03/version"
)

// exit status for any error
const errorExitStatus = 10

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "MONITOR", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(errorExitStatus)
	}

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "TRACE":
		err = trace(md)
	case "MONITOR":
		err = monitorMode(md)
	case "DISASM":
		err = disasm(md, os.Stdout)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		logger.Log(logger.Allow, "main", err)
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(errorExitStatus)
	}
}

// echo the log to stdout. colorized if stdout is a terminal
func setLogEcho(echo bool) {
	switch {
	case !echo:
		logger.SetEcho(nil)
	case term.IsTerminal(int(os.Stdout.Fd())):
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	default:
		logger.SetEcho(os.Stdout)
	}
}

// flags shared by the RUN, TRACE and MONITOR modes
type common struct {
	debugPC  *bool
	startPC  *modalflag.Address
	steps    *int
	halt     *string
	realTime *bool
	log      *bool
	memviz   *string
	stats    *bool
	profile  *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		debugPC:  md.AddBool("debugpc", false, "start at $C000 and fix PPUSTATUS reads (for CPU test logs)"),
		startPC:  md.AddAddress("startpc", "override the program counter after reset"),
		steps:    md.AddInt("steps", 0, "stop after the number of instructions (0 is unlimited)"),
		halt:     md.AddString("halt", "", "stop when the Lua expression is true. eg. \"pc == 0xc66e\""),
		realTime: md.AddBool("realtime", false, "run at the speed of an NTSC console"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
		memviz:   md.AddString("memviz", "", "write a memviz graph of the final instruction to file"),
		stats:    md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
		profile:  md.AddString("profile", "none", "run through the profiler: CPU, MEM, TRACE, ALL (comma separated)"),
	}
}

// prepare the NES according to the common flags and attach the cartridge
// named in the first remaining argument
func (c *common) prepare(md *modalflag.Modes, observer cpu.Observer) (*hardware.NES, error) {
	setLogEcho(*c.log)

	if *c.stats {
		statsview.Launch(os.Stdout)
	}

	if len(md.RemainingArgs()) != 1 {
		return nil, curated.Errorf("a single cartridge is required for %s mode", md)
	}

	var opts []hardware.Option
	if *c.debugPC {
		opts = append(opts, hardware.WithCompatibilityMode())
	}
	if observer != nil {
		opts = append(opts, hardware.WithObserver(observer))
	}

	nes, err := hardware.NewNES(opts...)
	if err != nil {
		return nil, err
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if err := nes.AttachCartridge(&cl); err != nil {
		nes.End()
		return nil, err
	}

	if c.startPC.Valid {
		nes.CPU.PC.Load(c.startPC.Value)
		logger.Logf(logger.Allow, "main", "PC set to %s", nes.CPU.PC)
	}

	if err := nes.SetRealTime(*c.realTime); err != nil {
		nes.End()
		return nil, err
	}

	return nes, nil
}

// execute the NES until the step count or halt condition is met, until an
// interrupt signal, or until the check function returns false. the check
// function can be nil
func (c *common) execute(nes *hardware.NES, check func() bool) error {
	profile, err := performance.ParseProfile(*c.profile)
	if err != nil {
		return err
	}

	var halt *script.Condition
	if *c.halt != "" {
		halt, err = script.NewCondition(*c.halt, nes)
		if err != nil {
			return err
		}
		defer halt.Close()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	steps := 0
	performanceBrake := 0

	runner := func() error {
		return nes.Run(func() (govern.State, error) {
			steps++
			if *c.steps > 0 && steps >= *c.steps {
				logger.Logf(logger.Allow, "main", "stopped after %d steps", steps)
				return govern.Ending, nil
			}

			if halt != nil {
				ok, err := halt.Check(nes.CPU.State(), nes.Cycles)
				if err != nil {
					return govern.Ending, err
				}
				if ok {
					logger.Logf(logger.Allow, "main", "halt condition met: %s", halt)
					return govern.Ending, nil
				}
			}

			if check != nil && !check() {
				return govern.Ending, nil
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-intChan:
					logger.Log(logger.Allow, "main", "interrupted")
					return govern.Ending, nil
				default:
				}
			}

			return govern.Running, nil
		})
	}

	return performance.RunProfiler(profile, "gopher2a03", runner)
}

// finish writes the memviz graph if requested and releases the NES
func (c *common) finish(nes *hardware.NES) error {
	defer nes.End()

	if *c.memviz == "" {
		return nil
	}

	f, err := os.Create(*c.memviz)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &nes.CPU.LastResult)
	logger.Logf(logger.Allow, "main", "memviz graph written to %s", *c.memviz)

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := c.prepare(md, nil)
	if err != nil {
		return err
	}

	err = c.execute(nes, nil)
	fmt.Printf("%s CYC:%d\n", nes.CPU, nes.Cycles)
	if err != nil {
		nes.End()
		return err
	}

	return c.finish(nes)
}

func trace(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)
	compare := md.AddString("compare", "", "reference trace to compare against")
	output := md.AddString("output", "", "write trace to file instead of stdout")
	dgst := md.AddBool("digest", false, "print a digest of the execution instead of the trace")
	md.AdditionalHelp("Trace lines are in the format of the nestest log. The reference trace for\n" +
		"-compare should be in the same format. The CYC field is optional.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var observers cpu.Observers
	var check func() bool

	var traceOut io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return curated.Errorf("trace: %v", err)
		}
		defer f.Close()
		traceOut = f
	}
	bw := bufio.NewWriter(traceOut)
	defer bw.Flush()

	var tw *tracer.Writer
	var dig *digest.CPU
	if *dgst {
		dig = digest.NewCPU()
		observers = append(observers, dig)
	} else {
		tw = tracer.NewWriter(bw, hardware.ResetCycles)
		observers = append(observers, tw)
	}

	var cmp *tracer.Comparison
	if *compare != "" {
		f, err := os.Open(*compare)
		if err != nil {
			return curated.Errorf("trace: %v", err)
		}
		defer f.Close()

		cmp = tracer.NewComparison(f, hardware.ResetCycles)
		observers = append(observers, cmp)
		check = func() bool {
			return cmp.Err() == nil
		}
	}

	nes, err := c.prepare(md, observers)
	if err != nil {
		return err
	}

	err = c.execute(nes, check)
	if err != nil {
		nes.End()
		return err
	}

	if tw != nil {
		if err := tw.Err(); err != nil {
			nes.End()
			return curated.Errorf("trace: %v", err)
		}
	}

	if dig != nil {
		fmt.Fprintf(bw, "%s (%d instructions)\n", dig.Hash(), dig.Instructions())
	}

	if cmp != nil {
		// running out of reference lines is not an error
		if err := cmp.Err(); err != nil && !cmp.Exhausted() {
			nes.End()
			return err
		}
		logger.Logf(logger.Allow, "trace", "%d lines matched reference", cmp.Lines())
		fmt.Fprintf(os.Stderr, "%d lines matched reference\n", cmp.Lines())
	}

	return c.finish(nes)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := c.prepare(md, nil)
	if err != nil {
		return err
	}

	// ctrl-c interrupts a RUN command rather than the program
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	interrupt := make(chan struct{}, 1)
	go func() {
		for range intChan {
			select {
			case interrupt <- struct{}{}:
			default:
			}
		}
	}()

	opts := []monitor.Option{monitor.WithInterrupt(interrupt)}

	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		t, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			nes.End()
			return err
		}
		defer t.CleanUp()
		opts = append(opts, monitor.WithPager(t), monitor.WithColor())
	}

	m := monitor.NewMonitor(nes, os.Stdin, os.Stdout, opts...)
	if err := m.Start(); err != nil {
		nes.End()
		return err
	}

	return c.finish(nes)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	realTime := md.AddBool("realtime", false, "run at the speed of an NTSC console")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through the profiler: CPU, MEM, TRACE, ALL (comma separated)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("a single cartridge is required for %s mode", md)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	return performance.Check(md.Output, prof, &cl, *realTime, *duration)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	start := md.AddAddress("start", "disassemble from the address instead of the vectors")
	linear := md.AddInt("linear", 0, "decode the number of instructions without following the program flow")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("a single cartridge is required for %s mode", md)
	}

	nes, err := hardware.NewNES(hardware.WithoutLogging())
	if err != nil {
		return err
	}
	defer nes.End()

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if err := nes.AttachCartridge(&cl); err != nil {
		return err
	}

	var entries []disassembly.Entry
	switch {
	case *linear > 0:
		addr := nes.CPU.PC.Address()
		if start.Valid {
			addr = start.Value
		}
		entries, err = disassembly.Linear(nes, addr, *linear)
	case start.Valid:
		entries, err = disassembly.Flow(nes, start.Value)
	default:
		entries, err = disassembly.Flow(nes, nes.Mem.Read16(cpubus.NMI), nes.Mem.Read16(cpubus.Reset), nes.Mem.Read16(cpubus.IRQ))
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(output)
	for _, e := range entries {
		fmt.Fprintln(w, e)
	}
	return w.Flush()
}
