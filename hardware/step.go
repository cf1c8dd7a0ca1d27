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

	"github.com/famicore/famicore/hardware/clocks"
)

// Step the emulation by one CPU instruction, or by the interrupt sequence if
// an NMI is pending. Returns the number of CPU cycles consumed, including any
// cycles the CPU was suspended for by OAM DMA.
//
// The PPU is advanced by three dots per CPU cycle. The videoCycle callback
// is called after every PPU dot and may be nil.
func (nes *NES) Step(videoCycle func() error) (int, error) {
	var cycles int

	err := nes.Ports.Step()
	if err != nil {
		return 0, fmt.Errorf("nes: %w", err)
	}

	if nes.pendingNMI {
		nes.pendingNMI = false
		before := nes.CPU.Cycles
		err = nes.CPU.NMI()
		if err != nil {
			return 0, fmt.Errorf("nes: nmi: %w", err)
		}
		cycles = int(nes.CPU.Cycles - before)
	} else {
		err = nes.CPU.ExecuteInstruction()
		if err != nil {
			return 0, err
		}
		cycles = nes.CPU.LastResult.Cycles
	}

	// OAM DMA suspends the CPU but the PPU continues
	stall := nes.Mem.Stall()
	nes.CPU.Cycles += uint64(stall)
	cycles += stall

	for range cycles * clocks.NTSC_PPUDotsPerCycle {
		nes.PPU.Step()
		if nes.PPU.NMI() {
			nes.pendingNMI = true
		}
		if videoCycle != nil {
			if err := videoCycle(); err != nil {
				return cycles, err
			}
		}
	}

	return cycles, nil
}
