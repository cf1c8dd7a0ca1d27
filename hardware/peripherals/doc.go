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

// Package peripherals implements the devices attached to the IO area of the
// CPU address space. The Ports type implements the memory.Device interface
// and should be attached to the memory map with AttachIO().
//
// Two standard controllers are attached to the ports. The audio registers
// are also in the IO area but audio is not emulated. Writes to those
// registers are logged and otherwise ignored.
package peripherals
