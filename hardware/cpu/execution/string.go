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

package execution

import (
	"fmt"
	"strings"

	"github.com/famicore/famicore/hardware/cpu/bits"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Operand returns the operand of the instruction in assembler notation.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// the branch target is relative to the address of the next instruction
		target := bits.ApplyDisplacement(r.Address+2, uint8(r.InstructionData))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}

	return "?"
}

// Bytes returns the bytes of the instruction as a hex string.
func (r Result) Bytes() string {
	if r.Defn == nil {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))

	switch r.ByteCount {
	case 2:
		s.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData)))
	case 3:
		lo, hi := bits.Split(r.InstructionData)
		s.WriteString(fmt.Sprintf(" %02x %02x", lo, hi))
	}

	return s.String()
}

// String returns the instruction as a single line of assembler. The address
// of the instruction is included.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  ???", r.Address)
	}

	s := fmt.Sprintf("%04x  %-8s  %s", r.Address, r.Bytes(), r.Defn.Operator)
	if op := r.Operand(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}

	return s
}
