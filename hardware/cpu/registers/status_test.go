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

package registers_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Negative = true
	sr.Carry = true
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
	test.ExpectEquality(t, sr.Value(), uint8(0xa1))

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "NV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	// unused bit is ignored on input and set on output
	sr.FromValue(0x00)
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20, v)
	}

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nv-bdizc")
}

func TestZeroNegative(t *testing.T) {
	sr := registers.NewStatusRegister()

	sr.SetZN(0)
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Negative, false)

	sr.SetZN(0x80)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Negative, true)

	sr.SetZN(0x7f)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Negative, false)
}
