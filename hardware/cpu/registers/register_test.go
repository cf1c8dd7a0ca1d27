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

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)

	// addition boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	r8.Load(255)
	carry, _ = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), uint8(1))

	// all bits through addition with carry
	r8.Load(255)
	carry, _ = r8.Add(255, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, r8.Value(), uint8(255))

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(10))

	r8.Load(0x01)
	carry, _ = r8.Subtract(0x06, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfb))
	test.ExpectEquality(t, carry, false)

	// subtract on boundary
	r8.Load(0)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(255))

	// overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(0x01, true)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	// shifts
	r8.Load(0xff)
	test.ExpectEquality(t, r8.ASL(), true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectEquality(t, r8.LSR(), false)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectEquality(t, r8.LSR(), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x3f))

	// rotation
	r8.Load(0x80)
	test.ExpectEquality(t, r8.ROL(false), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectEquality(t, r8.ROL(true), false)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	test.ExpectEquality(t, r8.ROR(true), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
	test.ExpectEquality(t, r8.ROR(false), false)
	test.ExpectEquality(t, r8.Value(), uint8(0x40))
	test.ExpectEquality(t, r8.IsBitV(), true)
}

func TestAddSubtractRoundTrip(t *testing.T) {
	r8 := registers.NewRegister(0, "A")
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r8.Load(uint8(a))
			r8.Add(uint8(b), false)
			r8.Subtract(uint8(b), true)
			test.ExpectEquality(t, r8.Value(), uint8(a), a, b)
		}
	}
}

func TestCompare(t *testing.T) {
	r8 := registers.NewRegister(0, "X")
	for a := 0; a <= 0xff; a++ {
		r8.Load(uint8(a))
		carry, result := r8.Compare(uint8(a))
		test.ExpectEquality(t, carry, true, a)
		test.ExpectEquality(t, result, uint8(0), a)
	}

	r8.Load(0x10)
	carry, result := r8.Compare(0x20)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, result, uint8(0xf0))
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xfd)
	test.ExpectEquality(t, sp.Address(), uint16(0x01fd))
	test.ExpectEquality(t, sp.Label(), "SP")

	sp.Load(0x00)
	sp.Decrement()
	test.ExpectEquality(t, sp.Value(), uint8(0xff))
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	sp.Increment()
	test.ExpectEquality(t, sp.Address(), uint16(0x0100))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.ExpectEquality(t, pc.String(), "fffe")
	pc.Add(3)
	test.ExpectEquality(t, pc.Address(), uint16(0x0001))
}
