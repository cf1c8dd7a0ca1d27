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

import "fmt"

// OperandKind identifies the kind of value held by an Operand.
type OperandKind int

// List of operand kinds.
const (
	// the instruction takes no operand
	OperandNone OperandKind = iota

	// the operand is the accumulator
	OperandAccumulator

	// the operand is the value itself
	OperandImmediate

	// the operand is the value at an address in memory
	OperandMemory
)

func (k OperandKind) String() string {
	switch k {
	case OperandNone:
		return "none"
	case OperandAccumulator:
		return "accumulator"
	case OperandImmediate:
		return "immediate"
	case OperandMemory:
		return "memory"
	}
	return "unknown operand kind"
}

// Operand is the resolved operand of an instruction. Only one of Value or
// Address is meaningful, depending on Kind.
type Operand struct {
	Kind    OperandKind
	Value   uint8
	Address uint16
}

func (op Operand) String() string {
	switch op.Kind {
	case OperandAccumulator:
		return "A"
	case OperandImmediate:
		return fmt.Sprintf("#%02x", op.Value)
	case OperandMemory:
		return fmt.Sprintf("%04x", op.Address)
	}
	return ""
}

// load returns the value of the operand.
func (mc *CPU) load(op Operand) (uint8, error) {
	switch op.Kind {
	case OperandAccumulator:
		return mc.A.Value(), nil
	case OperandImmediate:
		return op.Value, nil
	case OperandMemory:
		return mc.read8Bit(op.Address)
	}
	return 0, fmt.Errorf("cpu: %w: cannot read from %s operand", InvalidOperand, op.Kind)
}

// store writes a value to the operand.
func (mc *CPU) store(op Operand, v uint8) error {
	switch op.Kind {
	case OperandAccumulator:
		mc.A.Load(v)
		return nil
	case OperandMemory:
		return mc.write8Bit(op.Address, v)
	}
	return fmt.Errorf("cpu: %w: cannot write to %s operand", InvalidOperand, op.Kind)
}

// address returns the address of a memory operand.
func (mc *CPU) address(op Operand) (uint16, error) {
	if op.Kind != OperandMemory {
		return 0, fmt.Errorf("cpu: %w: %s operand has no address", InvalidOperand, op.Kind)
	}
	return op.Address, nil
}
