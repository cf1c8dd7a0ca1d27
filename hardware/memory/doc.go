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

// Package memory implements the CPU address space of the console. The Map
// type routes every CPU access to the correct device:
//
//	                          |---- RAM (2KB, mirrored)
//	                          |
//	                          |---- PPU registers (mirrored every 8 bytes)
//	    CPU ---- cpu bus ---- *
//	                          |---- IO device (OAM DMA handled by Map)
//	                          |
//	                          |---- Cartridge
//	                          |
//	                           ---- Vectors
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// Addresses that no device responds to result in an error wrapping
// cpubus.UnmappedAddress. The IO and Cartridge areas only respond if a device
// has been attached.
//
// The PPU is connected through the PPU interface. Reads and writes of the
// register window are forwarded with the register number (0 to 7). The OAM
// DMA register is implemented by writing 256 bytes to the OAMDATA register of
// the PPU.
package memory
