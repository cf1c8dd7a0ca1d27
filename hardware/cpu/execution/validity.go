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
	"fmt"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("execution: not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return fmt.Errorf("execution: no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return fmt.Errorf("execution: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.IsBranch() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return fmt.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles,
				r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
		if !r.BranchSuccess && r.Cycles != r.Defn.Cycles {
			return fmt.Errorf("execution: branch not taken but cycles (%d) exceed base cycles (%d)", r.Cycles, r.Defn.Cycles)
		}
		return nil
	}

	if r.BranchSuccess {
		return fmt.Errorf("execution: branch success for non-branch opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	if r.PageFault {
		if r.Cycles != r.Defn.Cycles+1 {
			return fmt.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles+1)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
