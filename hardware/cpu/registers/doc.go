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

// Package registers implements the registers of the 6502 CPU. The 8 bit
// general purpose registers (A, X and Y) are implemented by the Register
// type. The stack pointer is a Register with an address in page one. The
// program counter has its own 16 bit type.
//
// The arithmetic and logical functions of the Register type do not affect
// the status register. The effect on the status register must be applied by
// the CPU. For example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.SetZN(a.Value())
//
// The decimal mode flag has no effect on any of the arithmetic functions.
// This is consistent with the 2A03 variant of the 6502, which lacks the BCD
// circuitry.
package registers
