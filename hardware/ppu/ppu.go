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

package ppu

import (
	"fmt"

	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/logger"
)

// Timing of the NTSC PPU.
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262

	// vblank begins on the first dot of VBlankScanline and ends on the first
	// dot of PreRenderScanline
	VBlankScanline    = 241
	PreRenderScanline = 261
)

// Dimensions of the visible screen.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// PPU is the picture processing unit.
type PPU struct {
	// the mapper is not owned by the PPU. it is provided by the cartridge
	mapper cartridge.Mapper

	ctrl   uint8
	mask   uint8
	status uint8

	// object attribute memory. not used for drawing but can be written to by
	// the program through OAMADDR, OAMDATA and OAM DMA
	OAM     [256]uint8
	oamAddr uint8

	// palette memory. four background palettes followed by four sprite
	// palettes
	Palette [32]uint8

	// the current and temporary VRAM addresses and the shared write latch
	// for PPUSCROLL and PPUADDR
	v     uint16
	t     uint16
	latch bool

	// scroll values as written to PPUSCROLL
	scrollX uint8
	scrollY uint8

	// result of the previous PPUDATA read
	readBuffer uint8

	// the value of the most recent register write. returned by reads of
	// write-only registers
	openBus uint8

	Dot      int
	Scanline int
	Frame    int

	// the NMI line has been raised and not yet collected
	nmi bool
}

// NewPPU is the preferred method of initialisation for the PPU.
func NewPPU(mapper cartridge.Mapper) *PPU {
	ppu := &PPU{}
	ppu.Plumb(mapper)
	ppu.Reset()
	return ppu
}

// Plumb a new mapper into the PPU.
func (ppu *PPU) Plumb(mapper cartridge.Mapper) {
	ppu.mapper = mapper
	if mapper == nil {
		logger.Log(logger.Allow, "ppu", "no mapper attached. VRAM reads will return zero")
	}
}

// Reset the PPU to its power-on state. The contents of OAM and palette
// memory are not changed.
func (ppu *PPU) Reset() {
	ppu.ctrl = 0
	ppu.mask = 0
	ppu.status = 0
	ppu.oamAddr = 0
	ppu.v = 0
	ppu.t = 0
	ppu.latch = false
	ppu.scrollX = 0
	ppu.scrollY = 0
	ppu.readBuffer = 0
	ppu.openBus = 0
	ppu.Dot = 0
	ppu.Scanline = 0
	ppu.Frame = 0
	ppu.nmi = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d dot=%d ctrl=%02x mask=%02x status=%02x v=%04x",
		ppu.Frame, ppu.Scanline, ppu.Dot, ppu.ctrl, ppu.mask, ppu.status, ppu.v)
}

// InVBlank returns true if the vertical blank flag of PPUSTATUS is set.
func (ppu *PPU) InVBlank() bool {
	return ppu.status&statusVBlank == statusVBlank
}

// NMI returns true if the NMI line has been raised since the last call to
// NMI().
func (ppu *PPU) NMI() bool {
	n := ppu.nmi
	ppu.nmi = false
	return n
}

// Step advances the PPU by one dot.
func (ppu *PPU) Step() {
	ppu.Dot++
	if ppu.Dot >= DotsPerScanline {
		ppu.Dot = 0
		ppu.Scanline++
		if ppu.Scanline >= ScanlinesPerFrame {
			ppu.Scanline = 0
			ppu.Frame++
		}
	}

	if ppu.Dot != 1 {
		return
	}

	switch ppu.Scanline {
	case VBlankScanline:
		ppu.status |= statusVBlank
		if ppu.ctrl&ctrlNMI == ctrlNMI {
			ppu.nmi = true
		}
	case PreRenderScanline:
		ppu.status &^= statusVBlank | statusSprite0 | statusOverflow
	}
}

// ScrollOrigin returns the position in the 512x480 background that appears
// at the top left of the screen. The position is determined by the
// nametable select bits of PPUCTRL and the values written to PPUSCROLL.
func (ppu *PPU) ScrollOrigin() (int, int) {
	x := int(ppu.scrollX)
	y := int(ppu.scrollY)
	if ppu.ctrl&ctrlNametableX == ctrlNametableX {
		x += ScreenWidth
	}
	if ppu.ctrl&ctrlNametableY == ctrlNametableY {
		y += ScreenHeight
	}
	return x, y
}

// ShowBackground returns true if background rendering is enabled in PPUMASK.
func (ppu *PPU) ShowBackground() bool {
	return ppu.mask&maskBackground == maskBackground
}
