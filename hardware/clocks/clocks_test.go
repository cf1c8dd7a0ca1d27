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

package clocks_test

import (
	"math"
	"testing"

	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/test"
)

func TestCyclesToSeconds(t *testing.T) {
	test.ExpectEquality(t, clocks.CyclesToSeconds(0), 0.0)

	// one second of CPU cycles
	s := clocks.CyclesToSeconds(1789773)
	test.ExpectSuccess(t, math.Abs(s-1.0) < 1e-9)
}
