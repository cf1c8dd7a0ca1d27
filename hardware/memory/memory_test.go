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

package memory_test

import (
	"errors"
	"testing"

	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/test"
)

// mockPPU records register accesses.
type mockPPU struct {
	registers [8]uint8
	oam       []uint8
	lastRead  uint8
}

func (p *mockPPU) ReadRegister(register uint8) uint8 {
	p.lastRead = register
	return p.registers[register]
}

func (p *mockPPU) WriteRegister(register uint8, data uint8) {
	p.registers[register] = data
	if register == 0x04 {
		p.oam = append(p.oam, data)
	}
}

func TestRAMMirrors(t *testing.T) {
	mem := memory.NewMap(&mockPPU{})

	test.DemandSuccess(t, mem.Write(0x0012, 0x34))
	for _, a := range []uint16{0x0012, 0x0812, 0x1012, 0x1812} {
		v, err := mem.Read(a)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, uint8(0x34), a)
	}

	test.DemandSuccess(t, mem.Write(0x1fff, 0x56))
	test.ExpectEquality(t, mem.RAM[0x07ff], uint8(0x56))
}

func TestPPURegisters(t *testing.T) {
	ppu := &mockPPU{}
	mem := memory.NewMap(ppu)

	test.DemandSuccess(t, mem.Write(0x3ff9, 0x80))
	test.ExpectEquality(t, ppu.registers[1], uint8(0x80))

	ppu.registers[2] = 0xc0
	v, err := mem.Read(0x200a)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xc0))
	test.ExpectEquality(t, ppu.lastRead, uint8(2))

	// OAMDMA read aliases OAMDATA
	_, err = mem.Read(0x4014)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ppu.lastRead, uint8(4))
}

func TestOAMDMA(t *testing.T) {
	ppu := &mockPPU{}
	mem := memory.NewMap(ppu)

	for i := 0; i < 0x100; i++ {
		mem.RAM[0x0200+i] = uint8(i)
	}

	test.DemandSuccess(t, mem.Write(0x4014, 0x02))
	test.DemandEquality(t, len(ppu.oam), 256)
	for i := range ppu.oam {
		test.ExpectEquality(t, ppu.oam[i], uint8(i))
	}
	test.ExpectEquality(t, mem.Stall(), 513)
	test.ExpectEquality(t, mem.Stall(), 0)

	// dma from an unmapped page is an error
	err := mem.Write(0x4014, 0x50)
	test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true)
}

func TestVectors(t *testing.T) {
	mem := memory.NewMap(&mockPPU{})

	test.DemandSuccess(t, mem.SetVector(cpubus.Reset, 0x8000))
	test.DemandSuccess(t, mem.SetVector(cpubus.NMI, 0x9010))
	test.DemandSuccess(t, mem.SetVector(cpubus.IRQ, 0xa020))
	test.ExpectFailure(t, mem.SetVector(0xffff, 0x0000))

	v, err := mem.Read16(cpubus.Reset)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x8000))

	v, err = mem.Read16(cpubus.NMI)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x9010))

	lo, _ := mem.Read(0xfffe)
	hi, _ := mem.Read(0xffff)
	test.ExpectEquality(t, lo, uint8(0x20))
	test.ExpectEquality(t, hi, uint8(0xa0))
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMap(&mockPPU{})

	for _, a := range []uint16{0x4000, 0x4016, 0x4020, 0x5fff, 0x6000, 0x8000, 0xfff9} {
		_, err := mem.Read(a)
		test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true, a)
		err = mem.Write(a, 0)
		test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true, a)
	}

	// the cartridge area responds once a cartridge is attached
	cart := cartridge.NewFlat(0x10000)
	cart.Data[0x8000] = 0xea
	mem.AttachCartridge(cart)

	v, err := mem.Read(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xea))

	// but the gap between IO and cartridge never does
	_, err = mem.Read(0x5000)
	test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true)

	// and the IO area only with a device
	io := cartridge.NewFlat(0x10000)
	mem.AttachIO(io)
	test.ExpectSuccess(t, mem.Write(0x4016, 0x01))
	test.ExpectEquality(t, io.Data[0x4016], uint8(0x01))
}

func TestPeek(t *testing.T) {
	mem := memory.NewMap(&mockPPU{})
	mem.RAM[0x10] = 0x99

	v, err := mem.Peek(0x0810)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))

	_, err = mem.Peek(0x2002)
	test.ExpectFailure(t, err)
}
