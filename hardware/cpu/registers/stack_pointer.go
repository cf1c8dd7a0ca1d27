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

package registers

// the stack occupies page one of the address space.
const stackPage = 0x0100

// StackPointer is the 8 bit register that indexes the stack.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the address in page one pointed to by the stack pointer.
func (sp StackPointer) Address() uint16 {
	return stackPage | uint16(sp.value)
}

// Increment the stack pointer with wraparound.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the stack pointer with wraparound.
func (sp *StackPointer) Decrement() {
	sp.value--
}
