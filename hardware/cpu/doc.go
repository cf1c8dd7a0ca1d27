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

// Package cpu emulates the 6502 CPU as found in the 2A03 chip of the
// Famicom and NES. The decimal mode flag is present but has no effect on
// arithmetic.
//
// The CPU accesses memory through the cpubus.Memory interface. Each call to
// ExecuteInstruction() decodes one instruction at the program counter,
// resolves the operand according to the addressing mode, and executes it.
// The cycles taken by the instruction, including penalties for page crossing
// and branching, are recorded in LastResult and added to the Cycles counter.
//
// Errors returned by ExecuteInstruction() are fatal for the instruction and
// leave the CPU state undefined. The IllegalOpcode and
// UnimplementedInstruction sentinel errors can be tested for with
// errors.Is(). Errors from the memory system are passed through unchanged.
//
// Interrupts are not polled by the CPU. The NMI() and IRQ() functions should
// be called between instructions by the owner of the CPU.
package cpu
