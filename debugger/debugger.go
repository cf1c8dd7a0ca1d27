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

package debugger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/symbols"
)

// Debugger is the main container for a debugging session.
type Debugger struct {
	nes  *hardware.NES
	term terminal.Terminal

	state govern.State

	breakpoints breakpoints

	// symbols used by commands that take an address and by the disassembly
	Symbols *symbols.Symbols

	// the maximum number of instructions executed by the RUN command before
	// control returns to the terminal
	RunLimit int
}

// the default value of Debugger.RunLimit.
const defaultRunLimit = 10000000

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The console should have a cartridge attached.
func NewDebugger(nes *hardware.NES, term terminal.Terminal) *Debugger {
	return &Debugger{
		nes:         nes,
		term:        term,
		state:       govern.Idle,
		breakpoints: newBreakpoints(),
		Symbols:     symbols.NewSymbols(),
		RunLimit:    defaultRunLimit,
	}
}

// State returns the current emulation state.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

func (dbg *Debugger) prompt() string {
	return fmt.Sprintf("[ %04x ] > ", dbg.nes.CPU.PC.Address())
}

// Loop reads and runs commands until the QUIT command or the end of input.
func (dbg *Debugger) Loop() error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.state = govern.Paused
	logger.Log(logger.Allow, "debugger", "session started")

	for dbg.state != govern.Ending {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, terminal.UserQuit) {
				break // for loop
			}
			return fmt.Errorf("debugger: %w", err)
		}

		err = dbg.RunCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	dbg.state = govern.Ending
	logger.Log(logger.Allow, "debugger", "session ended")

	return nil
}

// RunCommand parses and runs a single command. Empty input and comments
// (beginning with #) are ignored.
func (dbg *Debugger) RunCommand(input string) error {
	input = strings.TrimSpace(input)
	if input == "" || strings.HasPrefix(input, "#") {
		return nil
	}

	tokens := strings.Fields(input)
	name := strings.ToUpper(tokens[0])

	cmd, ok := commandIndex[name]
	if !ok {
		return fmt.Errorf("%w: %s", UnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w: %s", WrongArguments, cmd.usage)
	}

	return cmd.fn(dbg, args)
}
