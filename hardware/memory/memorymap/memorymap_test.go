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

package memorymap_test

import (
	"testing"

	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/test"
)

const validMemMap = `0000 -> 1fff	RAM
2000 -> 3fff	PPU
4000 -> 4013	IO
4014 -> 4014	OAMDMA
4015 -> 401f	IO
4020 -> 5fff	undefined
6000 -> fff9	Cartridge
fffa -> ffff	Vectors
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestMirrors(t *testing.T) {
	for _, a := range []uint16{0x0123, 0x0923, 0x1123, 0x1923} {
		ma, area := memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.RAM, a)
		test.ExpectEquality(t, ma, uint16(0x0123), a)
	}

	for _, a := range []uint16{0x2002, 0x200a, 0x3ffa} {
		ma, area := memorymap.MapAddress(a)
		test.ExpectEquality(t, area, memorymap.PPU, a)
		test.ExpectEquality(t, ma, uint16(0x0002), a)
	}
}
