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

package cartridge

// Mirroring describes how the four logical nametables are mapped onto the
// physical nametable memory.
type Mirroring int

// List of supported mirroring modes.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenLower
	SingleScreenUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleScreenLower:
		return "single screen (lower)"
	case SingleScreenUpper:
		return "single screen (upper)"
	case FourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// physical nametable for each logical nametable.
var mirrorLookup = [...][4]uint16{
	Horizontal:        {0, 0, 1, 1},
	Vertical:          {0, 1, 0, 1},
	SingleScreenLower: {0, 0, 0, 0},
	SingleScreenUpper: {1, 1, 1, 1},
	FourScreen:        {0, 1, 2, 3},
}

// nametableSize is the number of bytes in one nametable, including the
// attribute table.
const nametableSize = 0x0400

// MirrorAddress translates an address in the nametable range (0x2000 to
// 0x3eff) to an offset into physical nametable memory.
func MirrorAddress(mirroring Mirroring, address uint16) uint16 {
	address = (address - 0x2000) & 0x0fff
	table := address / nametableSize
	offset := address % nametableSize
	return mirrorLookup[mirroring][table]*nametableSize + offset
}
