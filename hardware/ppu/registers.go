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

// The eight registers in the PPU register window.
const (
	PPUCTRL uint8 = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

// NumRegisters is the size of the register window.
const NumRegisters = 8

var registerNames = [NumRegisters]string{
	"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR",
	"OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA",
}

// RegisterName returns the canonical name of the register.
func RegisterName(register uint8) string {
	return registerNames[register%NumRegisters]
}

// PPUCTRL bits.
const (
	ctrlNametableX  = 0x01
	ctrlNametableY  = 0x02
	ctrlIncrement32 = 0x04
	ctrlBackground  = 0x10
	ctrlNMI         = 0x80
)

// PPUMASK bits.
const (
	maskBackground = 0x08
)

// PPUSTATUS bits. only the top three bits are driven by the PPU.
const (
	statusOverflow = 0x20
	statusSprite0  = 0x40
	statusVBlank   = 0x80
	statusBits     = statusOverflow | statusSprite0 | statusVBlank
)

// ReadRegister implements the memory.PPU interface.
func (ppu *PPU) ReadRegister(register uint8) uint8 {
	switch register % NumRegisters {
	case PPUSTATUS:
		v := ppu.status&statusBits | ppu.openBus&^statusBits
		ppu.status &^= statusVBlank
		ppu.latch = false
		return v

	case OAMDATA:
		return ppu.OAM[ppu.oamAddr]

	case PPUDATA:
		address := ppu.v & 0x3fff
		var v uint8
		if address < paletteOrigin {
			// reads below palette memory return the contents of the buffer
			// and then refill it
			v = ppu.readBuffer
			ppu.readBuffer = ppu.ReadVRAM(address)
		} else {
			// palette reads are not delayed. the buffer is filled with the
			// nametable data underneath the palette
			v = ppu.ReadVRAM(address)
			ppu.readBuffer = ppu.ReadVRAM(address - 0x1000)
		}
		ppu.incrementAddress()
		return v
	}

	// remaining registers are write-only
	return ppu.openBus
}

// WriteRegister implements the memory.PPU interface.
func (ppu *PPU) WriteRegister(register uint8, data uint8) {
	ppu.openBus = data

	switch register % NumRegisters {
	case PPUCTRL:
		// enabling NMI during vblank raises the NMI line immediately
		if ppu.ctrl&ctrlNMI == 0 && data&ctrlNMI == ctrlNMI && ppu.InVBlank() {
			ppu.nmi = true
		}
		ppu.ctrl = data
		ppu.t = ppu.t&^0x0c00 | uint16(data&0x03)<<10

	case PPUMASK:
		ppu.mask = data

	case PPUSTATUS:
		// read-only

	case OAMADDR:
		ppu.oamAddr = data

	case OAMDATA:
		ppu.OAM[ppu.oamAddr] = data
		ppu.oamAddr++

	case PPUSCROLL:
		if !ppu.latch {
			ppu.scrollX = data
			ppu.t = ppu.t&^0x001f | uint16(data>>3)
		} else {
			ppu.scrollY = data
			ppu.t = ppu.t&^0x73e0 | uint16(data&0x07)<<12 | uint16(data>>3)<<5
		}
		ppu.latch = !ppu.latch

	case PPUADDR:
		if !ppu.latch {
			ppu.t = ppu.t&0x00ff | uint16(data&0x3f)<<8
		} else {
			ppu.t = ppu.t&0xff00 | uint16(data)
			ppu.v = ppu.t
		}
		ppu.latch = !ppu.latch

	case PPUDATA:
		ppu.WriteVRAM(ppu.v&0x3fff, data)
		ppu.incrementAddress()
	}
}

// the VRAM address is incremented after every access through PPUDATA.
func (ppu *PPU) incrementAddress() {
	if ppu.ctrl&ctrlIncrement32 == ctrlIncrement32 {
		ppu.v += 32
	} else {
		ppu.v++
	}
	ppu.v &= 0x7fff
}
