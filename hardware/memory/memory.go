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

package memory

import (
	"fmt"

	"github.com/famicore/famicore/hardware/cpu/bits"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/logger"
)

// PPU defines the register interface of the picture processing unit.
type PPU interface {
	ReadRegister(register uint8) uint8
	WriteRegister(register uint8, data uint8)
}

// Device is anything that can be attached to the IO or Cartridge areas. The
// address is passed through without translation.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// register number of OAMDATA in the PPU register window.
const oamData = 0x04

// the number of cycles the CPU is suspended for during an OAM DMA transfer.
const dmaCycles = 513

// Map is the CPU address space of the console.
type Map struct {
	RAM [0x0800]uint8

	// storage for the three interrupt vectors
	vectors [6]uint8

	ppu  PPU
	io   Device
	cart Device

	// number of CPU cycles consumed by OAM DMA that have not yet been
	// collected by the console
	stall int
}

// NewMap is the preferred method of initialisation for Map. The PPU argument
// is required.
func NewMap(ppu PPU) *Map {
	return &Map{ppu: ppu}
}

// Reset the contents of RAM. Vectors and attached devices are unchanged.
func (mem *Map) Reset() {
	clear(mem.RAM[:])
	mem.stall = 0
}

// AttachCartridge connects a device to the cartridge area. A nil device
// disconnects the current cartridge.
func (mem *Map) AttachCartridge(cart Device) {
	mem.cart = cart
}

// AttachIO connects a device to the IO area. A nil device disconnects the
// current IO device.
func (mem *Map) AttachIO(io Device) {
	mem.io = io
}

// SetVector stores a 16 bit address in the vector storage. The vector
// argument should be one of cpubus.NMI, cpubus.Reset or cpubus.IRQ.
func (mem *Map) SetVector(vector uint16, address uint16) error {
	if vector < memorymap.OriginVectors || vector > memorymap.MemtopVectors-1 {
		return fmt.Errorf("memory: %w: %#04x is not a vector", cpubus.UnmappedAddress, vector)
	}
	idx := vector - memorymap.OriginVectors
	mem.vectors[idx], mem.vectors[idx+1] = bits.Split(address)
	return nil
}

// Stall returns the number of CPU cycles consumed by OAM DMA since the last
// call to Stall().
func (mem *Map) Stall() int {
	s := mem.stall
	mem.stall = 0
	return s
}

func unmapped(address uint16) error {
	return fmt.Errorf("memory: %w: %#04x", cpubus.UnmappedAddress, address)
}

// Read implements the cpubus.Memory interface.
func (mem *Map) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[ma], nil
	case memorymap.PPU:
		return mem.ppu.ReadRegister(uint8(ma)), nil
	case memorymap.OAMDMA:
		return mem.ppu.ReadRegister(oamData), nil
	case memorymap.IO:
		if mem.io != nil {
			return mem.io.Read(ma), nil
		}
	case memorymap.Cartridge:
		if mem.cart != nil {
			return mem.cart.Read(ma), nil
		}
	case memorymap.Vectors:
		return mem.vectors[ma-memorymap.OriginVectors], nil
	}

	return 0, unmapped(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Map) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
		return nil
	case memorymap.PPU:
		mem.ppu.WriteRegister(uint8(ma), data)
		return nil
	case memorymap.OAMDMA:
		return mem.dma(data)
	case memorymap.IO:
		if mem.io != nil {
			mem.io.Write(ma, data)
			return nil
		}
	case memorymap.Cartridge:
		if mem.cart != nil {
			mem.cart.Write(ma, data)
			return nil
		}
	case memorymap.Vectors:
		mem.vectors[ma-memorymap.OriginVectors] = data
		return nil
	}

	return unmapped(address)
}

// Read16 reads two consecutive bytes and composes them into a little-endian
// 16 bit value.
func (mem *Map) Read16(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}

// dma copies the page of memory to the PPU through the OAMDATA register.
func (mem *Map) dma(page uint8) error {
	origin := uint16(page) << 8
	for i := uint16(0); i < 0x100; i++ {
		v, err := mem.Read(origin + i)
		if err != nil {
			return fmt.Errorf("memory: oam dma: %w", err)
		}
		mem.ppu.WriteRegister(oamData, v)
	}

	mem.stall += dmaCycles
	logger.Logf(logger.Allow, "memory", "oam dma from %#04x", origin)

	return nil
}

// Peek returns the value at the address without side-effects. Reads of the
// PPU registers and the IO area have side-effects and so cannot be peeked.
func (mem *Map) Peek(address uint16) (uint8, error) {
	_, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU, memorymap.OAMDMA, memorymap.IO:
		return 0, fmt.Errorf("memory: cannot peek %s address %#04x", area, address)
	}
	return mem.Read(address)
}
