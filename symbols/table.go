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

package symbols

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps addresses to symbols. It keeps track of the widest symbol.
type Table struct {
	entries map[uint16]string

	// index of keys in entries. sortable through the sort.Interface
	idx []uint16

	maxWidth int
}

func newTable() *Table {
	return &Table{
		entries: make(map[uint16]string),
	}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%#04x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// add symbol to the table. an existing symbol at the same address is only
// replaced if prefer is true.
func (t *Table) add(addr uint16, symbol string, prefer bool) {
	if _, ok := t.entries[addr]; ok {
		if !prefer {
			return
		}
	} else {
		t.idx = append(t.idx, addr)
		sort.Sort(t)
	}

	t.entries[addr] = symbol
	t.maxWidth = max(t.maxWidth, len(symbol))
}

// search is case-insensitive. the symbol argument should be upper case.
func (t *Table) search(symbol string) (string, uint16, bool) {
	for _, a := range t.idx {
		if strings.ToUpper(t.entries[a]) == symbol {
			return t.entries[a], a, true
		}
	}
	return "", 0, false
}

// Len implements the sort.Interface.
func (t *Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
