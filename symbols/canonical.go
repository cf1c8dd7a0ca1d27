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

package symbols

import (
	"github.com/famicore/famicore/hardware/memory/cpubus"
	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/hardware/peripherals"
)

// registers that have no meaning when read
var writeOnly = map[uint16]bool{
	memorymap.OriginPPU + 0: true,
	memorymap.OriginPPU + 1: true,
	memorymap.OriginPPU + 3: true,
	memorymap.OriginPPU + 5: true,
	memorymap.OriginPPU + 6: true,
	memorymap.OAMDMAAddress: true,
}

// addresses that have no meaning when written
var readOnly = map[uint16]bool{
	memorymap.OriginPPU + 2: true,
	peripherals.JOY2:        true,
	cpubus.NMI:              true,
	cpubus.Reset:            true,
	cpubus.IRQ:              true,
}

func (sym *Symbols) canonise() {
	for addr, name := range cpubus.Registers {
		if !writeOnly[addr] {
			sym.read.add(addr, name, true)
		}
		if !readOnly[addr] {
			sym.write.add(addr, name, true)
		}
	}
}
