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

package memorymap

// Area represents the different areas of the CPU address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case OAMDMA:
		return "OAMDMA"
	case IO:
		return "IO"
	case Cartridge:
		return "Cartridge"
	case Vectors:
		return "Vectors"
	}

	return "undefined"
}

// The different areas of the address space.
const (
	Undefined Area = iota
	RAM
	PPU
	OAMDMA
	IO
	Cartridge
	Vectors
)

// The origin and memory top for each area of memory.
const (
	OriginRAM     = uint16(0x0000)
	MemtopRAM     = uint16(0x1fff)
	OriginPPU     = uint16(0x2000)
	MemtopPPU     = uint16(0x3fff)
	OriginIO      = uint16(0x4000)
	MemtopIO      = uint16(0x401f)
	OriginCart    = uint16(0x6000)
	MemtopCart    = uint16(0xfff9)
	OriginVectors = uint16(0xfffa)
	MemtopVectors = uint16(0xffff)
)

// OAMDMAAddress is the address of the OAM DMA register. It sits inside the
// IO area.
const OAMDMAAddress = uint16(0x4014)

// The internal RAM and the PPU registers are mirrored throughout their areas.
// The masks keep only the relevant bits of an address in those areas.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// MapAddress translates the address argument from mirror space to primary
// space and returns the area of memory the address belongs to. The
// translated address for the PPU area is the register number (0 to 7).
//
// Addresses in the Cartridge, IO and Vectors areas are not translated.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address & MaskPPU, PPU
	case address == OAMDMAAddress:
		return address, OAMDMA
	case address <= MemtopIO:
		return address, IO
	case address < OriginCart:
		return address, Undefined
	case address <= MemtopCart:
		return address, Cartridge
	}
	return address, Vectors
}
