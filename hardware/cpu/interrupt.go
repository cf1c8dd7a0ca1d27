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
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// the break bit in the packed status register. it only exists in the value
// pushed to the stack.
const breakFlag = 0x10

// the number of cycles taken by an interrupt sequence.
const interruptCycles = 7

// interrupt pushes the PC and the status register to the stack and loads the
// PC from the vector. The break flag is set in the pushed status register if
// the interrupt is the result of a BRK instruction.
func (mc *CPU) interrupt(vector uint16, brk bool) error {
	err := mc.Push16(mc.PC.Address())
	if err != nil {
		return err
	}

	status := mc.Status.Value()
	if brk {
		status |= breakFlag
	} else {
		status &^= breakFlag
	}

	err = mc.Push(status)
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	return mc.LoadPCIndirect(vector)
}

// pullStatus sets the status register from a value pulled from the stack.
// The break bit does not exist in the status register and is ignored.
func (mc *CPU) pullStatus(v uint8) {
	mc.Status.FromValue(v)
	mc.Status.Break = false
}

// NMI enters the non-maskable interrupt routine. It should be called between
// instructions.
func (mc *CPU) NMI() error {
	err := mc.interrupt(cpubus.NMI, false)
	if err != nil {
		return err
	}
	mc.Cycles += interruptCycles
	return nil
}

// IRQ enters the interrupt request routine. The request is ignored if the
// interrupt disable flag is set. Returns true if the interrupt was taken.
func (mc *CPU) IRQ() (bool, error) {
	if mc.Status.InterruptDisable {
		return false, nil
	}
	err := mc.interrupt(cpubus.IRQ, false)
	if err != nil {
		return false, err
	}
	mc.Cycles += interruptCycles
	return true, nil
}
