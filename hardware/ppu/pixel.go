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

import "fmt"

// PixelColor is the resolved colour of a pixel. It is either Transparent or
// an index into the master palette.
type PixelColor struct {
	opaque bool
	index  uint8
}

// Transparent is the colour of a background pixel with a colour value of
// zero. The universal background colour shows through.
var Transparent = PixelColor{}

// Index returns an opaque PixelColor for the master palette index.
func Index(index uint8) PixelColor {
	return PixelColor{opaque: true, index: index}
}

// IsTransparent returns true if the pixel is transparent.
func (c PixelColor) IsTransparent() bool {
	return !c.opaque
}

// Index returns the master palette index of the colour. The value is
// meaningless for a transparent pixel.
func (c PixelColor) Index() uint8 {
	return c.index
}

func (c PixelColor) String() string {
	if !c.opaque {
		return "transparent"
	}
	return fmt.Sprintf("index(%#02x)", c.index)
}
