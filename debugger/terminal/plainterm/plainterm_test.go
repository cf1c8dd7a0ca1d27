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

package plainterm_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/debugger/terminal/plainterm"
	"github.com/famicore/famicore/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\ncpu 1\n"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectEquality(t, pt.IsInteractive(), false)

	s, err := pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = pt.TermRead("> ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "cpu 1")

	_, err = pt.TermRead("> ")
	test.ExpectEquality(t, errors.Is(err, terminal.UserQuit), true)

	// the prompt is not written for non-interactive input
	test.ExpectEquality(t, out.String(), "")

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "quiet")
	pt.TermPrintLine(terminal.StyleError, "loud")
	test.ExpectEquality(t, out.String(), "hello\n* bad\n* loud\n")
}
