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

package cpu

import (
	"github.com/famicore/famicore/hardware/cpu/bits"
)

// Push a value onto the stack.
func (mc *CPU) Push(v uint8) error {
	err := mc.write8Bit(mc.SP.Address(), v)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

// Pop a value from the stack.
func (mc *CPU) Pop() (uint8, error) {
	mc.SP.Increment()
	return mc.read8Bit(mc.SP.Address())
}

// Peek returns the value at the top of the stack without changing the stack
// pointer.
func (mc *CPU) Peek() (uint8, error) {
	sp := mc.SP
	sp.Increment()
	return mc.read8Bit(sp.Address())
}

// Push16 pushes a 16 bit value onto the stack. The high byte is pushed first
// so that the value is little-endian in memory.
func (mc *CPU) Push16(v uint16) error {
	lo, hi := bits.Split(v)
	err := mc.Push(hi)
	if err != nil {
		return err
	}
	return mc.Push(lo)
}

// Pop16 pops a 16 bit value from the stack.
func (mc *CPU) Pop16() (uint16, error) {
	lo, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.Pop()
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}
