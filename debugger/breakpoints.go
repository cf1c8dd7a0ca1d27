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

package debugger

import (
	"fmt"
	"slices"
	"strings"
)

// breakpoints halt the RUN and FRAME commands when the PC reaches one of
// the addresses.
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() breakpoints {
	return breakpoints{addresses: make(map[uint16]bool)}
}

// toggle the breakpoint at the address. returns true if the breakpoint is now
// set.
func (bp *breakpoints) toggle(address uint16) bool {
	if bp.addresses[address] {
		delete(bp.addresses, address)
		return false
	}
	bp.addresses[address] = true
	return true
}

func (bp *breakpoints) clear() {
	clear(bp.addresses)
}

func (bp *breakpoints) check(pc uint16) bool {
	return bp.addresses[pc]
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}

	var l []uint16
	for a := range bp.addresses {
		l = append(l, a)
	}
	slices.Sort(l)

	s := strings.Builder{}
	for i, a := range l {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%04x", a))
	}
	return s.String()
}
