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

// Package disassembly decodes a range of the CPU address space into a list of
// instructions. Decoding is linear: every entry begins where the previous
// entry ended. Bytes that are not a valid opcode are listed as single byte
// entries and decoding continues with the next byte.
//
// Linear decoding cannot tell code from data so a disassembly of a data
// segment will contain plausible looking but meaningless instructions.
package disassembly
