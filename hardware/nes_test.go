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

package hardware_test

import (
	"testing"

	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/test"
)

const (
	resetAddress = 0x8000
	nmiAddress   = 0x9000
)

// program builds a 16KB PRG ROM with the reset program at 0x8000 and an NMI
// handler at 0x9000 that increments zero page location 0x10.
func program(reset ...uint8) []uint8 {
	prg := make([]uint8, 0x4000)
	copy(prg, reset)

	// INC $10; RTI
	copy(prg[nmiAddress-0x8000:], []uint8{0xe6, 0x10, 0x40})

	prg[0x3ffa] = uint8(nmiAddress & 0xff)
	prg[0x3ffb] = uint8(nmiAddress >> 8)
	prg[0x3ffc] = uint8(resetAddress & 0xff)
	prg[0x3ffd] = uint8(resetAddress >> 8)
	prg[0x3ffe] = uint8(nmiAddress & 0xff)
	prg[0x3fff] = uint8(nmiAddress >> 8)
	return prg
}

func newNES(t *testing.T, reset ...uint8) *hardware.NES {
	t.Helper()
	cart, err := cartridge.NewNROM(program(reset...), nil, cartridge.Vertical)
	test.DemandSuccess(t, err)
	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.AttachCartridge(cart))
	return nes
}

func TestAttachAndReset(t *testing.T) {
	nes := newNES(t, 0xea)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(resetAddress))
	test.ExpectEquality(t, nes.CPU.SP.Address(), uint16(0x01fd))
	test.ExpectEquality(t, nes.CPU.Status.InterruptDisable, true)

	v, err := nes.Vector(cpubus.NMI)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(nmiAddress))

	_, err = nes.Vector(0x1234)
	test.ExpectFailure(t, err)
}

func TestStepAdvancesPPU(t *testing.T) {
	// NOP; NOP
	nes := newNES(t, 0xea, 0xea)

	cycles, err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, nes.PPU.Dot, 6)

	var dots int
	_, err = nes.Step(func() error {
		dots++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dots, 6)
	test.ExpectEquality(t, nes.PPU.Dot, 12)
}

func TestNMIAtVBlank(t *testing.T) {
	// LDA #$80; STA $2000; loop: JMP loop
	nes := newNES(t, 0xa9, 0x80, 0x8d, 0x00, 0x20, 0x4c, 0x05, 0x80)

	test.ExpectSuccess(t, nes.RunFrame())
	test.ExpectEquality(t, nes.PPU.Frame, 1)
	test.ExpectEquality(t, nes.Mem.RAM[0x10], uint8(1))

	test.ExpectSuccess(t, nes.RunForFrameCount(2, nil))
	test.ExpectEquality(t, nes.PPU.Frame, 3)
	test.ExpectEquality(t, nes.Mem.RAM[0x10], uint8(3))
}

func TestNMIDisabled(t *testing.T) {
	// loop: JMP loop
	nes := newNES(t, 0x4c, 0x00, 0x80)
	test.ExpectSuccess(t, nes.RunForFrameCount(2, nil))
	test.ExpectEquality(t, nes.Mem.RAM[0x10], uint8(0))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(resetAddress))
}

func TestOAMDMA(t *testing.T) {
	// LDA #$02; STA $4014
	nes := newNES(t, 0xa9, 0x02, 0x8d, 0x14, 0x40)
	for i := range 0x100 {
		nes.Mem.RAM[0x200+i] = uint8(i ^ 0x5a)
	}

	cycles, err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)

	cycles, err = nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 4+513)
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(2+4+513))

	for i := range 0x100 {
		test.ExpectEquality(t, nes.PPU.OAM[i], uint8(i^0x5a))
	}
}

func TestControllerRead(t *testing.T) {
	// LDA #1; STA $4016; LDA #0; STA $4016; LDA $4016; LDX $4016
	nes := newNES(t, 0xa9, 0x01, 0x8d, 0x16, 0x40, 0xa9, 0x00, 0x8d, 0x16, 0x40,
		0xad, 0x16, 0x40, 0xae, 0x16, 0x40)
	nes.Ports.Player0.Press(peripherals.ButtonA, true)

	for range 6 {
		_, err := nes.Step(nil)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, nes.CPU.A.Value(), uint8(0x41))
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(0x40))
}

func TestRunContinueCheck(t *testing.T) {
	nes := newNES(t, 0x4c, 0x00, 0x80)

	var n int
	err := nes.Run(func() (govern.State, error) {
		n++
		if n >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(30))

	n = 0
	err = nes.Run(func() (govern.State, error) {
		n++
		if n == 1 {
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nes.CPU.Cycles, uint64(33))

	err = nes.Run(func() (govern.State, error) {
		return govern.Stepping, nil
	})
	test.ExpectFailure(t, err)

	err = nes.Run(func() (govern.State, error) {
		return govern.Idle, nil
	})
	test.ExpectFailure(t, err)
}

func TestIllegalOpcodeHalts(t *testing.T) {
	nes := newNES(t, 0x02)
	_, err := nes.Step(nil)
	test.ExpectFailure(t, err)
}

func TestBackgroundThroughRegisters(t *testing.T) {
	nes := newNES(t)

	// tile 1, row 0: plane 0 all set
	nes.PPU.WriteVRAM(0x0010, 0xff)

	// nametable entry 0 is tile 1 and background palette 0 colour 1 is 0x21
	nes.PPU.WriteVRAM(0x2000, 0x01)
	nes.PPU.WriteVRAM(0x3f01, 0x21)

	test.ExpectEquality(t, nes.PPU.BackgroundPixel(3, 0), ppu.Index(0x21))
	test.ExpectEquality(t, nes.PPU.BackgroundPixel(3, 1).IsTransparent(), true)
}

func TestNMIPending(t *testing.T) {
	// LDA #$80; STA $2000; loop: JMP loop
	nes := newNES(t, 0xa9, 0x80, 0x8d, 0x00, 0x20, 0x4c, 0x05, 0x80)

	for !nes.NMIPending() {
		_, err := nes.Step(nil)
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, nes.PPU.InVBlank(), true)

	cycles, err := nes.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, nes.NMIPending(), false)
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(nmiAddress))
}
