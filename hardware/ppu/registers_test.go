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

package ppu_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/test"
)

func setAddress(p *ppu.PPU, address uint16) {
	p.WriteRegister(ppu.PPUADDR, uint8(address>>8))
	p.WriteRegister(ppu.PPUADDR, uint8(address))
}

func TestPPUDATA(t *testing.T) {
	vram := cartridge.NewFlat(0x4000)
	p := ppu.NewPPU(vram)

	setAddress(p, 0x2000)
	p.WriteRegister(ppu.PPUDATA, 0x11)
	p.WriteRegister(ppu.PPUDATA, 0x22)
	test.ExpectEquality(t, vram.Data[0x2000], uint8(0x11))
	test.ExpectEquality(t, vram.Data[0x2001], uint8(0x22))

	// reads are delayed by one
	setAddress(p, 0x2000)
	_ = p.ReadRegister(ppu.PPUDATA)
	test.ExpectEquality(t, p.ReadRegister(ppu.PPUDATA), uint8(0x11))
	test.ExpectEquality(t, p.ReadRegister(ppu.PPUDATA), uint8(0x22))

	// increment by 32
	p.WriteRegister(ppu.PPUCTRL, 0x04)
	setAddress(p, 0x2400)
	p.WriteRegister(ppu.PPUDATA, 0x33)
	p.WriteRegister(ppu.PPUDATA, 0x44)
	test.ExpectEquality(t, vram.Data[0x2400], uint8(0x33))
	test.ExpectEquality(t, vram.Data[0x2420], uint8(0x44))

	// 0x3000 mirrors 0x2000
	p.WriteRegister(ppu.PPUCTRL, 0x00)
	setAddress(p, 0x3005)
	p.WriteRegister(ppu.PPUDATA, 0x55)
	test.ExpectEquality(t, vram.Data[0x2005], uint8(0x55))
	test.ExpectEquality(t, p.ReadVRAM(0x3005), uint8(0x55))
}

func TestPalette(t *testing.T) {
	vram := cartridge.NewFlat(0x4000)
	p := ppu.NewPPU(vram)

	setAddress(p, 0x3f00)
	for i := range 32 {
		p.WriteRegister(ppu.PPUDATA, uint8(i))
	}

	// the sprite palette entries at 0x10, 0x14, 0x18 and 0x1c mirror the
	// background palette entries
	test.ExpectEquality(t, p.Palette[0x00], uint8(0x10))
	test.ExpectEquality(t, p.Palette[0x04], uint8(0x14))
	test.ExpectEquality(t, p.Palette[0x01], uint8(0x01))
	test.ExpectEquality(t, p.Palette[0x11], uint8(0x11))

	// palette memory is mirrored to the top of the address space
	test.ExpectEquality(t, p.ReadVRAM(0x3f21), uint8(0x01))

	// palette reads are not delayed
	setAddress(p, 0x3f01)
	test.ExpectEquality(t, p.ReadRegister(ppu.PPUDATA), uint8(0x01))

	// palette memory is not in the mapper
	test.ExpectEquality(t, vram.Data[0x3f01], uint8(0x00))
}

func TestOAM(t *testing.T) {
	p := ppu.NewPPU(cartridge.NewFlat(0x4000))

	p.WriteRegister(ppu.OAMADDR, 0xfe)
	p.WriteRegister(ppu.OAMDATA, 0x01)
	p.WriteRegister(ppu.OAMDATA, 0x02)
	p.WriteRegister(ppu.OAMDATA, 0x03)
	test.ExpectEquality(t, p.OAM[0xfe], uint8(0x01))
	test.ExpectEquality(t, p.OAM[0xff], uint8(0x02))
	test.ExpectEquality(t, p.OAM[0x00], uint8(0x03))

	p.WriteRegister(ppu.OAMADDR, 0xff)
	test.ExpectEquality(t, p.ReadRegister(ppu.OAMDATA), uint8(0x02))
}

func TestStatusAndVBlank(t *testing.T) {
	p := ppu.NewPPU(cartridge.NewFlat(0x4000))
	p.WriteRegister(ppu.PPUCTRL, 0x80)

	for range ppu.VBlankScanline * ppu.DotsPerScanline {
		p.Step()
	}
	test.ExpectEquality(t, p.InVBlank(), false)
	test.ExpectEquality(t, p.NMI(), false)

	p.Step()
	test.ExpectEquality(t, p.Scanline, ppu.VBlankScanline)
	test.ExpectEquality(t, p.Dot, 1)
	test.ExpectEquality(t, p.InVBlank(), true)
	test.ExpectEquality(t, p.NMI(), true)

	// the NMI line is only raised once
	test.ExpectEquality(t, p.NMI(), false)

	// reading PPUSTATUS clears the vblank flag and the write latch
	p.WriteRegister(ppu.PPUADDR, 0x21)
	test.ExpectEquality(t, p.ReadRegister(ppu.PPUSTATUS)&0x80, uint8(0x80))
	test.ExpectEquality(t, p.InVBlank(), false)
	test.ExpectEquality(t, p.ReadRegister(ppu.PPUSTATUS)&0x80, uint8(0x00))
	setAddress(p, 0x2345)
	p.WriteRegister(ppu.PPUDATA, 0x99)
	test.ExpectEquality(t, p.ReadVRAM(0x2345), uint8(0x99))

	// complete the frame
	for p.Frame == 0 {
		p.Step()
	}
	test.ExpectEquality(t, p.Scanline, 0)
	test.ExpectEquality(t, p.Dot, 0)
}

func TestNMIEnabledDuringVBlank(t *testing.T) {
	p := ppu.NewPPU(cartridge.NewFlat(0x4000))
	for !p.InVBlank() {
		p.Step()
	}
	test.ExpectEquality(t, p.NMI(), false)

	p.WriteRegister(ppu.PPUCTRL, 0x80)
	test.ExpectEquality(t, p.NMI(), true)
}

func TestScrollOrigin(t *testing.T) {
	p := ppu.NewPPU(cartridge.NewFlat(0x4000))

	_ = p.ReadRegister(ppu.PPUSTATUS)
	p.WriteRegister(ppu.PPUSCROLL, 12)
	p.WriteRegister(ppu.PPUSCROLL, 34)
	x, y := p.ScrollOrigin()
	test.ExpectEquality(t, x, 12)
	test.ExpectEquality(t, y, 34)

	p.WriteRegister(ppu.PPUCTRL, 0x03)
	x, y = p.ScrollOrigin()
	test.ExpectEquality(t, x, 12+256)
	test.ExpectEquality(t, y, 34+240)
}
