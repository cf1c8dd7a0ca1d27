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

// Layout of the PPU address space.
const (
	nametableOrigin = uint16(0x2000)
	mirrorOrigin    = uint16(0x3000)
	paletteOrigin   = uint16(0x3f00)
	vramMemtop      = uint16(0x3fff)
)

// the palette address as an index into palette memory. the entries at 0x10,
// 0x14, 0x18 and 0x1c are mirrors of 0x00, 0x04, 0x08 and 0x0c.
func paletteIndex(address uint16) uint16 {
	idx := address & 0x1f
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}

// ReadVRAM returns the value at the address in PPU address space.
// Addresses 0x3000 to 0x3eff mirror 0x2000 to 0x2eff. Palette memory is
// provided by the PPU and everything else by the mapper.
func (ppu *PPU) ReadVRAM(address uint16) uint8 {
	address &= vramMemtop
	switch {
	case address >= paletteOrigin:
		return ppu.Palette[paletteIndex(address)]
	case address >= mirrorOrigin:
		address -= 0x1000
	}
	if ppu.mapper == nil {
		return 0
	}
	return ppu.mapper.Read(address)
}

// WriteVRAM writes the value to the address in PPU address space. See
// ReadVRAM() for the layout of the address space.
func (ppu *PPU) WriteVRAM(address uint16, data uint8) {
	address &= vramMemtop
	switch {
	case address >= paletteOrigin:
		ppu.Palette[paletteIndex(address)] = data
		return
	case address >= mirrorOrigin:
		address -= 0x1000
	}
	if ppu.mapper == nil {
		return
	}
	ppu.mapper.Write(address, data)
}
