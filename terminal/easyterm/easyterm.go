// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.
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

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// whether the terminal attributes could be read
	isTerminal bool

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	keys     chan uint8
	keysOnce sync.Once

	// UpdateGeometry() is called from the signal handler
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the modes we'll be using. cbreak is a
	// modification of the canonical attributes
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err == nil {
		pt.isTerminal = true
		pt.cbreakAttr = pt.canAttr
		termios.Cfmakecbreak(&pt.cbreakAttr)
	}

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

	_ = pt.UpdateGeometry()

	return nil
}

// CleanUp restores the terminal to canonical mode and stops the signal
// handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// IsTerminal returns true if the input file is a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerminal
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry: %w", err)
	}
	pt.Geometry.Rows = int(ws.Row)
	pt.Geometry.Cols = int(ws.Col)

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	if pt.isTerminal {
		termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
	}
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed. Interrupt and suspend keys still
// generate signals.
func (pt *Terminal) CBreakMode() {
	if pt.isTerminal {
		termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
	}
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if !pt.isTerminal {
		return nil
	}
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// Keys returns a channel on which every byte read from the input file is
// sent. The channel is closed when the input file reaches EOF or returns an
// error.
//
// The goroutine that reads the input is started on the first call. It
// blocks on the input file and is not stopped by CleanUp().
func (pt *Terminal) Keys() <-chan uint8 {
	pt.keysOnce.Do(func() {
		pt.keys = make(chan uint8, 16)
		go func() {
			defer close(pt.keys)
			b := make([]byte, 1)
			for {
				n, err := pt.input.Read(b)
				if err != nil {
					return
				}
				if n > 0 {
					pt.keys <- b[0]
				}
			}
		}()
	})
	return pt.keys
}
