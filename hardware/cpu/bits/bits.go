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

// Package bits contains the small arithmetic helpers shared by the CPU
// registers, the operand resolver and the instruction executor.
package bits

// IsNegative returns true if the sign bit (bit 7) of v is set.
func IsNegative(v uint8) bool {
	return v&0x80 == 0x80
}

// Overflow returns true if the addition of a and b, producing result, has
// overflowed when the values are interpreted as two's complement numbers.
// That is, a and b have the same sign and the result has a different sign.
//
// The carry-in of the addition does not need to be considered separately.
// It is already accounted for by the result.
func Overflow(a, b, result uint8) bool {
	return (a^result)&(b^result)&0x80 != 0
}

// Word composes a 16 bit value from its little-endian bytes.
func Word(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Split separates a 16 bit value into its little-endian bytes.
func Split(v uint16) (lo, hi uint8) {
	return uint8(v), uint8(v >> 8)
}

// ApplyDisplacement adds the signed 8 bit displacement to address.
func ApplyDisplacement(address uint16, displacement uint8) uint16 {
	return uint16(int32(address) + int32(int8(displacement)))
}

// PageCrossed returns true if the two addresses are on different pages.
func PageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}
