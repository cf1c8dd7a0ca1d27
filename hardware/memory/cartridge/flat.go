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

// Flat is a Mapper backed by a single slice of memory. Addresses beyond the
// end of the slice wrap around. An empty Flat reads as zero and ignores
// writes.
type Flat struct {
	Data []uint8
}

// NewFlat is the preferred method of initialisation for Flat. A size of zero
// or less creates an empty Flat.
func NewFlat(size int) *Flat {
	return &Flat{Data: make([]uint8, max(size, 0))}
}

// Read implements the Mapper interface.
func (f *Flat) Read(address uint16) uint8 {
	if len(f.Data) == 0 {
		return 0
	}
	return f.Data[int(address)%len(f.Data)]
}

// Write implements the Mapper interface.
func (f *Flat) Write(address uint16, data uint8) {
	if len(f.Data) == 0 {
		return
	}
	f.Data[int(address)%len(f.Data)] = data
}
