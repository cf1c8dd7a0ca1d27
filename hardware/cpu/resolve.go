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
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/bits"
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// resolve the operand for the addressing mode by consuming the operand bytes
// at the PC. The second return value is true if an index register moved the
// effective address onto a different page to the base address.
//
// Side-effects:
//   - advances the PC past the operand bytes
//   - updates LastResult.ByteCount and LastResult.InstructionData
func (mc *CPU) resolve(mode instructions.AddressingMode) (Operand, bool, error) {
	switch mode {
	case instructions.Implied:
		return Operand{Kind: OperandNone}, false, nil

	case instructions.Accumulator:
		return Operand{Kind: OperandAccumulator}, false, nil

	case instructions.Immediate, instructions.Relative:
		// for relative addressing the value is a signed displacement that is
		// applied by the branch logic
		v, err := mc.read8BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = uint16(v)
		return Operand{Kind: OperandImmediate, Value: v}, false, nil

	case instructions.ZeroPage:
		zp, err := mc.read8BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = uint16(zp)
		return Operand{Kind: OperandMemory, Address: uint16(zp)}, false, nil

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		zp, err := mc.read8BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		idx := mc.X.Value()
		if mode == instructions.ZeroPageIndexedY {
			idx = mc.Y.Value()
		}

		// the addition never carries out of the zero page
		return Operand{Kind: OperandMemory, Address: uint16(zp + idx)}, false, nil

	case instructions.Absolute:
		address, err := mc.read16BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = address
		return Operand{Kind: OperandMemory, Address: address}, false, nil

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		base, err := mc.read16BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = base

		idx := mc.X.Address()
		if mode == instructions.AbsoluteIndexedY {
			idx = mc.Y.Address()
		}

		address := base + idx
		return Operand{Kind: OperandMemory, Address: address}, bits.PageCrossed(base, address), nil

	case instructions.Indirect:
		pointer, err := mc.read16BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = pointer

		address, err := mc.read16Bit(pointer)
		if err != nil {
			return Operand{}, false, err
		}
		return Operand{Kind: OperandMemory, Address: address}, false, nil

	case instructions.IndexedIndirect:
		zp, err := mc.read8BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		address, err := mc.read16BitZeroPage(zp + mc.X.Value())
		if err != nil {
			return Operand{}, false, err
		}
		return Operand{Kind: OperandMemory, Address: address}, false, nil

	case instructions.IndirectIndexed:
		zp, err := mc.read8BitPC()
		if err != nil {
			return Operand{}, false, err
		}
		mc.LastResult.InstructionData = uint16(zp)

		base, err := mc.read16BitZeroPage(zp)
		if err != nil {
			return Operand{}, false, err
		}

		address := base + mc.Y.Address()
		return Operand{Kind: OperandMemory, Address: address}, bits.PageCrossed(base, address), nil
	}

	return Operand{}, false, fmt.Errorf("cpu: unknown addressing mode (%d)", mode)
}
