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

package terminal

import "errors"

// UserQuit is returned by TermRead() when the input has been closed or the
// user has otherwise indicated that the session should end.
var UserQuit = errors.New("user quit")

// Style indicates the type of output being printed.
type Style int

// List of output styles.
const (
	// the output of a command
	StyleFeedback Style = iota

	// the result of executing an instruction
	StyleInstrument

	// help text
	StyleHelp

	// errors are always printed, even if the terminal is silenced
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next command. The prompt should be displayed
	// before waiting for input if the terminal is interactive.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
