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

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry contains the dimensions of a terminal (usually the output
// terminal) in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	geometry Geometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// the geometry is updated by the signal handler
	mu sync.Mutex
}

// NewTerminal prepares the input and output files for use by the monitor. The
// terminal is left in canonical mode.
func NewTerminal(inputFile, outputFile *os.File) (*Terminal, error) {
	if inputFile == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt := &Terminal{
		input:  inputFile,
		output: outputFile,
	}

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	// a geometry failure is not fatal. output will not be paged
	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt, nil
}

// CleanUp restores canonical mode and stops the signal handler.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry information: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry.Rows = int(ws.Row)
	pt.geometry.Cols = int(ws.Col)

	return nil
}

// Geometry returns the most recent dimensions of the output terminal. The
// dimensions will be zero if they could not be determined.
func (pt *Terminal) Geometry() Geometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// Rows returns the number of rows in the output terminal.
func (pt *Terminal) Rows() int {
	return pt.Geometry().Rows
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH)
}

// ReadKey waits for a single key press. The terminal is in raw mode for the
// duration of the call so interrupt and suspend keys are returned as key
// codes rather than being handled by the terminal driver. The suspend key is
// handled here by suspending the process.
func (pt *Terminal) ReadKey() (byte, error) {
	if err := pt.RawMode(); err != nil {
		return 0, fmt.Errorf("easyterm: %w", err)
	}
	defer pt.CanonicalMode()

	b := make([]byte, 1)
	for {
		if _, err := pt.input.Read(b); err != nil {
			return 0, err
		}

		if b[0] != KeySuspend {
			return b[0], nil
		}

		_ = pt.CanonicalMode()
		SuspendProcess()
		_ = pt.RawMode()
	}
}
