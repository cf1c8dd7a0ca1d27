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

package execution

import (
	"github.com/famicore/famicore/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// the definition of the decoded instruction. nil if the opcode could not
	// be decoded
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand bytes of the instruction. for instructions with a two byte
	// operand the value is little-endian decoded. in the case of branch
	// instructions it is the offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches the value
	// may be greater
	Cycles int

	// whether an extra cycle was required because the effective address was
	// on a different page to the base address
	PageFault bool

	// whether the last branch instruction resulted in a branch
	BranchSuccess bool

	// whether this data has been finalised. some of the fields may be
	// undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
