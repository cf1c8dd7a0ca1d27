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

package cpu_test

import (
	"math/rand/v2"
	"testing"

	reference "github.com/beevik/go6502/cpu"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/test"
)

// comparison programs are loaded at programOrigin. absolute operands are
// restricted to the range of internal RAM so that only the region up to
// compareTop needs to be compared after the program has run
const (
	programOrigin = uint16(0xc000)
	programLength = 64
	compareTop    = 0x0900
)

// referenceSafe returns true if the instruction definition can be executed by
// both implementations with identical results. Decimal mode, the break flag
// and control flow are excluded. Undefined opcodes have no definition and are
// never safe.
func referenceSafe(defn *instructions.Definition) bool {
	if defn == nil {
		return false
	}
	switch defn.Effect {
	case instructions.Flow, instructions.Subroutine, instructions.Interrupt:
		return false
	}
	switch defn.Operator {
	case instructions.Sed, instructions.Php, instructions.Plp:
		return false
	}
	return true
}

// flat 64k memory with no unmapped regions. random programs may write
// anywhere through a zero page pointer
type flatMem struct {
	internal [0x10000]uint8
}

func (mem *flatMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *flatMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func randomProgram(rng *rand.Rand, safe []*instructions.Definition) []uint8 {
	var program []uint8
	for range programLength {
		defn := safe[rng.IntN(len(safe))]
		program = append(program, defn.OpCode)
		switch defn.AddressingMode.OperandBytes() {
		case 1:
			program = append(program, uint8(rng.UintN(0x100)))
		case 2:
			address := 0x0200 + uint16(rng.UintN(0x0600))
			program = append(program, uint8(address), uint8(address>>8))
		}
	}
	return program
}

// the hardware reads the high byte of an indirect pointer at the end of the
// zero page from the start of the zero page. the reference implementation
// might not, so programs stop before any such instruction
func pointerWraps(mem *flatMem, mc *cpu.CPU) bool {
	pc := mc.PC.Address()
	defn, ok := instructions.Lookup(mem.internal[pc])
	if !ok {
		return false
	}
	zp := mem.internal[pc+1]
	switch defn.AddressingMode {
	case instructions.IndexedIndirect:
		return zp+mc.X.Value() == 0xff
	case instructions.IndirectIndexed:
		return zp == 0xff
	}
	return false
}

func TestReferenceSafe(t *testing.T) {
	defns := instructions.Definitions()
	test.ExpectEquality(t, len(defns), 256)

	var undefined, safe int
	for i, defn := range defns {
		if defn == nil {
			undefined++
			test.ExpectEquality(t, referenceSafe(defn), false, i)
			continue // for loop
		}
		if referenceSafe(defn) {
			safe++
		}
	}
	test.ExpectEquality(t, undefined, 256-151)
	test.ExpectEquality(t, safe > 100, true)

	defn, ok := instructions.Lookup(0x69)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, referenceSafe(defn), true)

	defn, ok = instructions.Lookup(0x4c)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, referenceSafe(defn), false)
}

func TestReferenceComparison(t *testing.T) {
	var safe []*instructions.Definition
	allowed := make(map[uint8]bool)
	for _, defn := range instructions.Definitions() {
		if referenceSafe(defn) {
			safe = append(safe, defn)
			allowed[defn.OpCode] = true
		}
	}

	rng := rand.New(rand.NewPCG(6502, 2602))

	for p := range 2000 {
		program := randomProgram(rng, safe)

		mem := &flatMem{}
		mc := cpu.NewCPU(mem)

		refMem := reference.NewFlatMemory()
		ref := reference.NewCPU(reference.NMOS, refMem)

		for i := range uint16(8) {
			mem.internal[i] = uint8(i)
			refMem.StoreByte(i, uint8(i))
		}
		for i, b := range program {
			mem.internal[programOrigin+uint16(i)] = b
			refMem.StoreByte(programOrigin+uint16(i), b)
		}

		mc.LoadPC(programOrigin)
		ref.SetPC(programOrigin)
		ref.Reg.A = 0
		ref.Reg.X = 0
		ref.Reg.Y = 0
		ref.Reg.SP = mc.SP.Value()

		for i := range programLength {
			// programs can modify themselves so the next opcode is checked
			// every step
			if !allowed[mem.internal[mc.PC.Address()]] || pointerWraps(mem, mc) {
				break // for loop
			}

			err := mc.ExecuteInstruction()
			if !test.ExpectSuccess(t, err, p, i) {
				break // for loop
			}
			ref.Step()

			var fail bool
			fail = !test.ExpectEquality(t, mc.A.Value(), ref.Reg.A, p, i, "A") || fail
			fail = !test.ExpectEquality(t, mc.X.Value(), ref.Reg.X, p, i, "X") || fail
			fail = !test.ExpectEquality(t, mc.Y.Value(), ref.Reg.Y, p, i, "Y") || fail
			fail = !test.ExpectEquality(t, mc.SP.Value(), ref.Reg.SP, p, i, "SP") || fail
			fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(ref.Reg.PC), p, i, "PC") || fail
			fail = !test.ExpectEquality(t, mc.Status.Carry, ref.Reg.Carry, p, i, "C") || fail
			fail = !test.ExpectEquality(t, mc.Status.Zero, ref.Reg.Zero, p, i, "Z") || fail
			fail = !test.ExpectEquality(t, mc.Status.Overflow, ref.Reg.Overflow, p, i, "V") || fail
			fail = !test.ExpectEquality(t, mc.Status.Negative, ref.Reg.Sign, p, i, "N") || fail
			if fail {
				t.Fatalf("program %d diverged at %s", p, mc.LastResult.String())
			}
		}

		for a := range uint16(compareTop) {
			if !test.ExpectEquality(t, mem.internal[a], refMem.LoadByte(a), p, a) {
				t.Fatalf("program %d: memory differs at %#04x", p, a)
			}
		}
	}
}
