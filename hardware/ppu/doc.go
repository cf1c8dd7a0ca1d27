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

// Package ppu implements the background layer of the 2C02 picture processing
// unit. Sprites are not emulated.
//
// The PPU is accessed by the CPU through eight memory mapped registers. See
// the ReadRegister() and WriteRegister() functions. The PPU address space is
// provided by the cartridge through the cartridge.Mapper interface, with the
// exception of palette memory which is held by the PPU itself.
//
// The colour of any pixel of the background can be resolved with the
// BackgroundPixel() function. The result is an index into the master palette
// of the console or Transparent. Conversion to RGB is the job of the frame
// package.
//
// The Step() function advances the PPU by one dot. It does not draw anything.
// It keeps track of the scanline and sets the vertical blank status at the
// correct time, raising the NMI signal if the program has enabled it.
package ppu
