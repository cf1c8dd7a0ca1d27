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

// Package cpubus defines the interface between the CPU and the memory
// system, the addresses of the interrupt vectors and the errors that may be
// returned by a memory access.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from
// the CPU. Errors returned by the implementation are fatal to the current
// instruction.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// The addresses of the three interrupt vectors. Each vector is a
// little-endian 16 bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// UnmappedAddress is returned (wrapped) by Memory implementations when an
// address is accessed that no memory area responds to.
var UnmappedAddress = errors.New("unmapped address")
