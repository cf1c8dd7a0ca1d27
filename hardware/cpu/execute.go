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
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// ExecuteInstruction steps the CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. resolve the operand according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the operand
//
// On success LastResult is finalised and the number of cycles taken by the
// instruction is added to the Cycles field.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		// the result is final even though there is no definition. the caller
		// might still want to make use of LastResult
		mc.LastResult.Final = true
		return fmt.Errorf("cpu: %w: %#02x at %#04x", IllegalOpcode, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// BRK is an implied instruction but the byte after the opcode is
	// consumed as padding
	if defn.Operator == instructions.Brk {
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)
	}

	op, pageCrossed, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return err
	}

	mc.LastResult.Cycles = defn.Cycles
	if defn.PageSensitive && pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	err = mc.execute(defn, op)
	if err != nil {
		return err
	}

	mc.Cycles += uint64(mc.LastResult.Cycles)
	mc.LastResult.Final = true

	return nil
}

// execute the operator of the instruction definition with the resolved operand.
func (mc *CPU) execute(defn *instructions.Definition, op Operand) error {
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Clc:
		mc.Status.Carry = false
	case instructions.Cld:
		mc.Status.DecimalMode = false
	case instructions.Cli:
		mc.Status.InterruptDisable = false
	case instructions.Clv:
		mc.Status.Overflow = false
	case instructions.Sec:
		mc.Status.Carry = true
	case instructions.Sed:
		mc.Status.DecimalMode = true
	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Pha:
		return mc.Push(mc.A.Value())

	case instructions.Php:
		// the break flag is always set in the pushed value
		return mc.Push(mc.Status.Value() | breakFlag)

	case instructions.Pla:
		v, err := mc.Pop()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.SetZN(v)

	case instructions.Plp:
		v, err := mc.Pop()
		if err != nil {
			return err
		}
		mc.pullStatus(v)

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())
	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())
	case instructions.Txs:
		// the only transfer that does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.Lda:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.Status.SetZN(v)
	case instructions.Ldx:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.X.Load(v)
		mc.Status.SetZN(v)
	case instructions.Ldy:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.Y.Load(v)
		mc.Status.SetZN(v)

	case instructions.Sta:
		return mc.store(op, mc.A.Value())
	case instructions.Stx:
		return mc.store(op, mc.X.Value())
	case instructions.Sty:
		return mc.store(op, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())
	case instructions.Dex:
		mc.X.Subtract(1, true)
		mc.Status.SetZN(mc.X.Value())
	case instructions.Dey:
		mc.Y.Subtract(1, true)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Inc, instructions.Dec:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		if defn.Operator == instructions.Inc {
			v++
		} else {
			v--
		}
		mc.Status.SetZN(v)
		return mc.store(op, v)

	case instructions.And, instructions.Ora, instructions.Eor:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.And:
			mc.A.AND(v)
		case instructions.Ora:
			mc.A.ORA(v)
		case instructions.Eor:
			mc.A.EOR(v)
		}
		mc.Status.SetZN(mc.A.Value())

	case instructions.Bit:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Overflow = v&0x40 == 0x40
		mc.Status.Negative = bits.IsNegative(v)

	case instructions.Adc:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Sbc:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Cmp, instructions.Cpx, instructions.Cpy:
		v, err := mc.load(op)
		if err != nil {
			return err
		}
		reg := mc.A
		switch defn.Operator {
		case instructions.Cpx:
			reg = mc.X
		case instructions.Cpy:
			reg = mc.Y
		}
		var result uint8
		mc.Status.Carry, result = reg.Compare(v)
		mc.Status.SetZN(result)

	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		v, err := mc.load(op)
		if err != nil {
			return err
		}

		// shifts operate on a copy of the operand, which is then written back
		r := mc.A
		r.Load(v)
		switch defn.Operator {
		case instructions.Asl:
			mc.Status.Carry = r.ASL()
		case instructions.Lsr:
			mc.Status.Carry = r.LSR()
		case instructions.Rol:
			mc.Status.Carry = r.ROL(mc.Status.Carry)
		case instructions.Ror:
			mc.Status.Carry = r.ROR(mc.Status.Carry)
		}
		mc.Status.SetZN(r.Value())
		return mc.store(op, r.Value())

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, op)
	case instructions.Bcs:
		mc.branch(mc.Status.Carry, op)
	case instructions.Beq:
		mc.branch(mc.Status.Zero, op)
	case instructions.Bmi:
		mc.branch(mc.Status.Negative, op)
	case instructions.Bne:
		mc.branch(!mc.Status.Zero, op)
	case instructions.Bpl:
		mc.branch(!mc.Status.Negative, op)
	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, op)
	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, op)

	case instructions.Jmp:
		address, err := mc.address(op)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Jsr:
		address, err := mc.address(op)
		if err != nil {
			return err
		}

		// the address pushed is the address of the last byte of the JSR
		// instruction. RTS corrects for this
		err = mc.Push16(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		address, err := mc.Pop16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)
		mc.PC.Add(1)

	case instructions.Brk:
		return mc.interrupt(cpubus.IRQ, true)

	case instructions.Rti:
		v, err := mc.Pop()
		if err != nil {
			return err
		}
		mc.pullStatus(v)

		address, err := mc.Pop16()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	default:
		return fmt.Errorf("cpu: %w: %s", UnimplementedInstruction, defn.Operator)
	}

	return nil
}

// branch to the address given by the displacement in the operand if the
// flag is true. The displacement is relative to the address of the next
// instruction, which is the current value of the PC.
//
// Side-effects:
//   - updates LastResult.BranchSuccess and LastResult.Cycles
func (mc *CPU) branch(flag bool, op Operand) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	from := mc.PC.Address()
	to := bits.ApplyDisplacement(from, op.Value)

	// +1 cycle for a taken branch and +1 cycle more if the branch is to a
	// different page
	mc.LastResult.Cycles++
	if bits.PageCrossed(from, to) {
		mc.LastResult.Cycles++
	}

	mc.PC.Load(to)
}
