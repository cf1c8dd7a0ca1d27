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

// Mapper is the narrow interface to cartridge memory. Addresses are passed
// without translation.
type Mapper interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Cartridge is implemented by all cartridge types.
type Cartridge interface {
	// Mapper for the CPU address space
	CPU() Mapper

	// Mapper for the PPU address space
	PPU() Mapper

	// ID returns a short string identifying the cartridge type
	ID() string
}
