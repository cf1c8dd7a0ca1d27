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

// Package cartridge implements the cartridge side of the console. A
// cartridge presents two Mapper instances: one for the CPU address space and
// one for the PPU address space. The PPU instance includes the nametable
// memory, which is on the console but whose layout is decided by the
// cartridge wiring (the mirroring).
//
// The NROM type implements iNES mapper 0. The Flat type is a simple RAM that
// can stand in for either address space.
package cartridge
