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

package registers

import (
	"strings"

	"github.com/famicore/famicore/hardware/cpu/bits"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Negative         bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// bit positions of the flags when packed into a byte.
const (
	carryBit            = 0x01
	zeroBit             = 0x02
	interruptDisableBit = 0x04
	decimalModeBit      = 0x08
	breakBit            = 0x10
	unusedBit           = 0x20
	overflowBit         = 0x40
	negativeBit         = 0x80
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags with upper case indicating a set flag. The
// unused bit is shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Negative, 'n')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// SetZN sets the zero and negative flags according to v.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Negative = bits.IsNegative(v)
}

// Value converts the StatusRegister into a value suitable for pushing onto
// the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(unusedBit)

	if sr.Negative {
		v |= negativeBit
	}
	if sr.Overflow {
		v |= overflowBit
	}
	if sr.Break {
		v |= breakBit
	}
	if sr.DecimalMode {
		v |= decimalModeBit
	}
	if sr.InterruptDisable {
		v |= interruptDisableBit
	}
	if sr.Zero {
		v |= zeroBit
	}
	if sr.Carry {
		v |= carryBit
	}

	return v
}

// FromValue converts an 8 bit value (taken from the stack, for example) into
// the StatusRegister receiver. The unused bit is ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Negative = v&negativeBit == negativeBit
	sr.Overflow = v&overflowBit == overflowBit
	sr.Break = v&breakBit == breakBit
	sr.DecimalMode = v&decimalModeBit == decimalModeBit
	sr.InterruptDisable = v&interruptDisableBit == interruptDisableBit
	sr.Zero = v&zeroBit == zeroBit
	sr.Carry = v&carryBit == carryBit
}
