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

package frame

import (
	"image"
	"image/color"

	"github.com/fogleman/nes/nes"

	"github.com/famicore/famicore/hardware/ppu"
)

// Background is the interface to the PPU required by the renderer.
type Background interface {
	BackgroundPixel(x, y int) ppu.PixelColor
	ScrollOrigin() (int, int)
	ReadVRAM(address uint16) uint8
}

// address of the universal background colour in palette memory.
const universalBackground = 0x3f00

// Colour returns the RGB colour of an entry in the master palette. Only the
// lower six bits of the index are used.
func Colour(index uint8) color.RGBA {
	return nes.Palette[index&0x3f]
}

// Render the visible screen. The screen is a 256x240 window into the 512x480
// background starting at the scroll origin.
func Render(bg Background) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	ox, oy := bg.ScrollOrigin()
	universal := Colour(bg.ReadVRAM(universalBackground))

	for y := range ppu.ScreenHeight {
		for x := range ppu.ScreenWidth {
			px := bg.BackgroundPixel(ox+x, oy+y)
			if px.IsTransparent() {
				img.SetRGBA(x, y, universal)
			} else {
				img.SetRGBA(x, y, Colour(px.Index()))
			}
		}
	}

	return img
}

// RenderNametables renders the entire 512x480 background, ignoring the
// scroll origin. Useful for debugging.
func RenderNametables(bg Background) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth*2, ppu.ScreenHeight*2))
	universal := Colour(bg.ReadVRAM(universalBackground))

	for y := range ppu.ScreenHeight * 2 {
		for x := range ppu.ScreenWidth * 2 {
			px := bg.BackgroundPixel(x, y)
			if px.IsTransparent() {
				img.SetRGBA(x, y, universal)
			} else {
				img.SetRGBA(x, y, Colour(px.Index()))
			}
		}
	}

	return img
}
