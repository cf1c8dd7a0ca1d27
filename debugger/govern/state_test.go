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


package govern_test

import (
	"testing"

	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/test"
)

func TestState(t *testing.T) {
	test.ExpectEquality(t, govern.Idle.String(), "idle")
	test.ExpectEquality(t, govern.Running.String(), "running")
	test.ExpectEquality(t, govern.State(99).String(), "unknown state")

	test.ExpectEquality(t, govern.Running.Continues(), true)
	test.ExpectEquality(t, govern.Paused.Continues(), true)
	test.ExpectEquality(t, govern.Stepping.Continues(), false)
	test.ExpectEquality(t, govern.Ending.Continues(), false)
	test.ExpectEquality(t, govern.Idle.Continues(), false)
}
