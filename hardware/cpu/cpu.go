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
	"errors"
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/bits"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/memory/cpubus"
)

// Sentinel errors returned by ExecuteInstruction().
var (
	// the opcode has no entry in the definitions table
	IllegalOpcode = errors.New("illegal opcode")

	// the opcode has a definition but the operator has no implementation
	UnimplementedInstruction = errors.New("unimplemented instruction")

	// an operand was used in a way that is not possible for its kind. for
	// example, writing to an immediate value
	InvalidOperand = errors.New("invalid operand")
)

// the value of the stack pointer after a reset.
const resetStackPointer = 0xfd

// CPU implements the 6502 found in the 2A03. Register logic is implemented
// by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// total number of cycles executed since the last reset
	Cycles uint64

	// result of the most recent instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is returned in the reset state but the PC has not been loaded with
// the reset vector.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(0),
		Status: registers.NewStatusRegister(),
	}
	mc.Reset()
	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. Does not load PC with the reset vector.
// Use LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Cycles = 0
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetStackPointer)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit reads a little-endian 16 bit value from the address.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}

// read16BitZeroPage reads a little-endian 16 bit value from the zero page.
// The high byte is read from the start of the zero page if the low byte is
// at the end of it.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}

// read8BitPC reads the byte at the PC and advances the PC.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}

// read16BitPC reads the little-endian 16 bit value at the PC and advances
// the PC by two.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}
