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

// Layout of the background in tiles. The background is made up of four
// logical nametables arranged in a 2x2 square.
const (
	tileSize         = 8
	nametableColumns = 32
	nametableRows    = 30
	backgroundCols   = nametableColumns * 2
	backgroundRows   = nametableRows * 2

	nametableSize   = 0x0400
	attributeOffset = 0x03c0
	attributeCols   = 8

	// bytes per tile in the pattern table. the second bitplane follows the
	// first
	patternSize    = 16
	bitplaneOffset = 8

	// the pattern table used for the background is at 0x1000 if the
	// background bit of PPUCTRL is set
	patternTableSize = 0x1000
)

// wrap v into the range 0 to n-1. negative values wrap from the end.
func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// BackgroundPixel resolves the colour of the background at the position.
// The position is in the 512x480 space made up of the four logical
// nametables and wraps in both directions.
//
// Colour value zero is always Transparent. Otherwise the result is the value
// in palette memory selected by the attribute table and the colour value.
func (ppu *PPU) BackgroundPixel(x, y int) PixelColor {
	x = wrap(x, backgroundCols*tileSize)
	y = wrap(y, backgroundRows*tileSize)
	col := x / tileSize
	row := y / tileSize
	fineX := x % tileSize
	fineY := y % tileSize

	// the quadrant of the background selects the logical nametable
	quadrant := uint16(row/nametableRows*2 + col/nametableColumns)
	base := nametableOrigin + quadrant*nametableSize
	col %= nametableColumns
	row %= nametableRows

	pattern := uint16(ppu.ReadVRAM(base + uint16(row*nametableColumns+col)))

	address := pattern*patternSize + uint16(fineY)
	if ppu.ctrl&ctrlBackground == ctrlBackground {
		address += patternTableSize
	}
	lo := ppu.ReadVRAM(address)
	hi := ppu.ReadVRAM(address + bitplaneOffset)

	colour := (lo>>fineX)&0x01 | ((hi>>fineX)&0x01)<<1
	if colour == 0 {
		return Transparent
	}

	// each attribute byte covers 4x4 tiles. each pair of bits selects the
	// palette for a 2x2 group of tiles in the order NW, NE, SW, SE
	attr := ppu.ReadVRAM(base + attributeOffset + uint16(row/4*attributeCols+col/4))
	shift := (row%4/2)*4 + (col%4/2)*2
	palette := (attr >> shift) & 0x03

	return Index(ppu.ReadVRAM(paletteOrigin + uint16(palette)*4 + uint16(colour)))
}
