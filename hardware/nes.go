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

package hardware

import (
	"fmt"

	"github.com/famicore/famicore/cartridgeloader"
	"github.com/famicore/famicore/hardware/cpu"
	"github.com/famicore/famicore/hardware/memory"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/hardware/ppu"
	"github.com/famicore/famicore/logger"
)

// NES is the main container for the emulated components of the console.
type NES struct {
	CPU   *cpu.CPU
	Mem   *memory.Map
	PPU   *ppu.PPU
	Ports *peripherals.Ports

	// the attached cartridge. nil if no cartridge is attached
	Cart cartridge.Cartridge

	// an NMI has been raised by the PPU and will be serviced before the
	// next instruction
	pendingNMI bool
}

// NewNES creates a new console with no cartridge attached.
func NewNES() *NES {
	nes := &NES{}
	nes.PPU = ppu.NewPPU(nil)
	nes.Mem = memory.NewMap(nes.PPU)
	nes.Ports = peripherals.NewPorts()
	nes.Mem.AttachIO(nes.Ports)
	nes.CPU = cpu.NewCPU(nes.Mem)
	return nes
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU)
}

// AttachCartridge connects the cartridge to the CPU and PPU address spaces
// and copies the interrupt vectors from the end of the cartridge's CPU
// address space. The console is reset.
func (nes *NES) AttachCartridge(cart cartridge.Cartridge) error {
	nes.Cart = cart
	if cart == nil {
		nes.Mem.AttachCartridge(nil)
		nes.PPU.Plumb(nil)
		return nil
	}

	nes.Mem.AttachCartridge(cart.CPU())
	nes.PPU.Plumb(cart.PPU())

	for _, v := range []uint16{cpubus.NMI, cpubus.Reset, cpubus.IRQ} {
		lo := cart.CPU().Read(v)
		hi := cart.CPU().Read(v + 1)
		err := nes.Mem.SetVector(v, uint16(hi)<<8|uint16(lo))
		if err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}

	logger.Logf(logger.Allow, "nes", "attached %s cartridge", cart.ID())

	return nes.Reset()
}

// AttachLoader creates a cartridge from the loaded data and attaches it. The
// loader will be loaded if it has not been already.
func (nes *NES) AttachLoader(cl *cartridgeloader.Loader) error {
	if !cl.HasLoaded() {
		err := cl.Load()
		if err != nil {
			return fmt.Errorf("nes: %w", err)
		}
	}
	cart, err := cl.Cartridge()
	if err != nil {
		return fmt.Errorf("nes: %w", err)
	}
	return nes.AttachCartridge(cart)
}

// Reset emulates the reset button. RAM is cleared, the CPU and PPU are
// reset and the PC is loaded from the reset vector.
func (nes *NES) Reset() error {
	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.CPU.Reset()
	nes.pendingNMI = false

	err := nes.CPU.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return fmt.Errorf("nes: %w", err)
	}

	logger.Logf(logger.Allow, "nes", "reset vector %#04x", nes.CPU.PC.Address())

	return nil
}

// NMIPending returns true if an NMI has been raised by the PPU and will be
// serviced by the next call to Step().
func (nes *NES) NMIPending() bool {
	return nes.pendingNMI
}

// Vector returns the address stored in one of the interrupt vectors.
func (nes *NES) Vector(vector uint16) (uint16, error) {
	if vector < memorymap.OriginVectors {
		return 0, fmt.Errorf("nes: %w: %#04x is not a vector", cpubus.UnmappedAddress, vector)
	}
	return nes.Mem.Read16(vector)
}
