// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

// Package keyterm implements the Terminal interface for the debugger with
// the controlling terminal in cbreak mode. Commands are issued with single
// key presses. Other keys open a line prompt so that any command can still
// be entered.
//
// Key bindings:
//
//	space, s    STEP
//	f           FRAME
//	r           RUN
//	c           CPU
//	p           PPU
//	d           DISASM
//	q           QUIT
//	:           enter a full command
package keyterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/famicore/famicore/debugger/terminal"
)

// the device opened for key input.
const device = "/dev/tty"

// Bindings maps single key presses to debugger commands.
var Bindings = map[byte]string{
	' ': "STEP",
	's': "STEP",
	'f': "FRAME",
	'r': "RUN",
	'c': "CPU",
	'p': "PPU",
	'd': "DISASM",
	'q': "QUIT",
}

// KeyTerminal reads single key presses from the controlling terminal.
type KeyTerminal struct {
	tty      *term.Term
	output   io.Writer
	silenced bool
}

// Available returns true if stdin is a terminal and so the KeyTerminal can
// be used.
func Available() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// Initialise implements the terminal.Terminal interface.
func (kt *KeyTerminal) Initialise() error {
	if !Available() {
		return fmt.Errorf("keyterm: stdin is not a terminal")
	}

	var err error
	kt.tty, err = term.Open(device)
	if err != nil {
		return fmt.Errorf("keyterm: %w", err)
	}

	err = kt.tty.SetCbreak()
	if err != nil {
		kt.tty.Close()
		return fmt.Errorf("keyterm: %w", err)
	}

	kt.output = os.Stdout

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (kt *KeyTerminal) CleanUp() {
	if kt.tty == nil {
		return
	}
	_ = kt.tty.Restore()
	_ = kt.tty.Close()
	kt.tty = nil
}

// Silence implements the terminal.Terminal interface.
func (kt *KeyTerminal) Silence(silenced bool) {
	kt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (kt *KeyTerminal) TermPrintLine(style terminal.Style, s string) {
	if kt.silenced && style != terminal.StyleError {
		return
	}
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	if kt.output == nil {
		kt.output = os.Stdout
	}

	// output post-processing is disabled in cbreak mode on some systems
	fmt.Fprintf(kt.output, "%s\r\n", strings.ReplaceAll(s, "\n", "\r\n"))
}

// TermRead implements the terminal.Input interface.
func (kt *KeyTerminal) TermRead(prompt string) (string, error) {
	if kt.tty == nil {
		return "", terminal.UserQuit
	}

	io.WriteString(kt.output, prompt)

	b := make([]byte, 1)
	n, err := kt.tty.Read(b)
	if err != nil {
		return "", fmt.Errorf("keyterm: %w", err)
	}
	if n == 0 {
		return "", terminal.UserQuit
	}

	// ctrl-d
	if b[0] == 0x04 {
		return "", terminal.UserQuit
	}

	if cmd, ok := Bindings[b[0]]; ok {
		io.WriteString(kt.output, "\r\n")
		return cmd, nil
	}

	return kt.readLine(b[0])
}

// readLine switches back to cooked mode for the duration of a line of input.
func (kt *KeyTerminal) readLine(first byte) (string, error) {
	err := kt.tty.Restore()
	if err != nil {
		return "", fmt.Errorf("keyterm: %w", err)
	}
	defer kt.tty.SetCbreak()

	var s string
	if first != ':' && first != '\n' {
		s = string(first)
		io.WriteString(kt.output, s)
	}

	line, err := bufio.NewReader(kt.tty).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("keyterm: %w", err)
	}

	return strings.TrimSpace(s + line), nil
}

// IsInteractive implements the terminal.Input interface.
func (kt *KeyTerminal) IsInteractive() bool {
	return true
}
