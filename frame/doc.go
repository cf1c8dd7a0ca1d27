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

// Package frame renders the background of the PPU to an image. Colour
// indexes produced by the PPU are resolved to RGB with the 2C02 master
// palette. Transparent pixels are drawn with the universal background colour
// stored at palette address 0x3f00.
//
// Rendered frames can be scaled and encoded as PNG or BMP.
package frame
