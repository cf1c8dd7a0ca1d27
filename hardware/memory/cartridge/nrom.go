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

import (
	"fmt"

	"github.com/famicore/famicore/logger"
)

// sizes of the memory banks in an NROM cartridge.
const (
	prgBankSize = 0x4000
	prgRAMSize  = 0x2000
	chrSize     = 0x2000
)

// NROM implements iNES mapper 0. There is no bank switching. The PRG ROM is
// either 16KB (mirrored) or 32KB and the CHR memory is 8KB of ROM or RAM.
type NROM struct {
	prg    []uint8
	prgRAM [prgRAMSize]uint8

	chr      []uint8
	chrIsRAM bool

	// nametable memory. large enough for four screen mirroring
	vram      [4 * nametableSize]uint8
	mirroring Mirroring
}

// NewNROM is the preferred method of initialisation for NROM. If chr is
// empty the cartridge is given 8KB of CHR RAM.
func NewNROM(prg []uint8, chr []uint8, mirroring Mirroring) (*NROM, error) {
	if len(prg) != prgBankSize && len(prg) != 2*prgBankSize {
		return nil, fmt.Errorf("nrom: PRG ROM must be 16KB or 32KB (not %d bytes)", len(prg))
	}

	cart := &NROM{
		prg:       prg,
		mirroring: mirroring,
	}

	switch len(chr) {
	case 0:
		cart.chr = make([]uint8, chrSize)
		cart.chrIsRAM = true
	case chrSize:
		cart.chr = chr
	default:
		return nil, fmt.Errorf("nrom: CHR ROM must be 8KB (not %d bytes)", len(chr))
	}

	return cart, nil
}

// ID implements the Cartridge interface.
func (cart *NROM) ID() string {
	return "NROM"
}

func (cart *NROM) String() string {
	return fmt.Sprintf("%s %dKB PRG, %s mirroring", cart.ID(), len(cart.prg)/1024, cart.mirroring)
}

// CPU implements the Cartridge interface.
func (cart *NROM) CPU() Mapper {
	return nromCPU{cart}
}

// PPU implements the Cartridge interface.
func (cart *NROM) PPU() Mapper {
	return nromPPU{cart}
}

type nromCPU struct {
	*NROM
}

func (cart nromCPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000:
		return cart.prg[int(address-0x8000)%len(cart.prg)]
	case address >= 0x6000:
		return cart.prgRAM[address-0x6000]
	}
	return 0
}

func (cart nromCPU) Write(address uint16, data uint8) {
	switch {
	case address >= 0x8000:
		logger.Logf(logger.Allow, "cartridge", "nrom: write to ROM ignored (%#04x)", address)
	case address >= 0x6000:
		cart.prgRAM[address-0x6000] = data
	}
}

type nromPPU struct {
	*NROM
}

func (cart nromPPU) Read(address uint16) uint8 {
	address &= 0x3fff
	if address < chrSize {
		return cart.chr[address]
	}
	return cart.vram[MirrorAddress(cart.mirroring, address)]
}

func (cart nromPPU) Write(address uint16, data uint8) {
	address &= 0x3fff
	if address < chrSize {
		if cart.chrIsRAM {
			cart.chr[address] = data
		} else {
			logger.Logf(logger.Allow, "cartridge", "nrom: write to CHR ROM ignored (%#04x)", address)
		}
		return
	}
	cart.vram[MirrorAddress(cart.mirroring, address)] = data
}
