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

// Package hardware is the base package for the console emulation. The NES
// type bundles the CPU, the memory map, the PPU, the controller ports and
// the cartridge.
//
// The console is driven one CPU instruction at a time with Step(). For every
// CPU cycle consumed by the instruction the PPU is advanced by three dots. An
// NMI raised by the PPU during those dots is delivered before the next
// instruction.
//
// Run(), RunFrame() and RunForFrameCount() are convenience functions built
// on Step().
package hardware
