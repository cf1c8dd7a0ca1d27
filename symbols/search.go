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

import "strings"

// SearchTable is used to select and identify a symbol table when searching.
type SearchTable int

// List of valid symbol table identifiers.
const (
	SearchAll SearchTable = iota
	SearchLabel
	SearchRead
	SearchWrite
)

func (t SearchTable) String() string {
	switch t {
	case SearchAll:
		return "unspecified"
	case SearchLabel:
		return "label"
	case SearchRead:
		return "read"
	case SearchWrite:
		return "write"
	}
	return ""
}

// SearchResults contains the normalised symbol info found in the SearchTable.
type SearchResults struct {
	Table   SearchTable
	Symbol  string
	Address uint16
}

func (sym *Symbols) tables(target SearchTable) []SearchTable {
	if target == SearchAll {
		return []SearchTable{SearchLabel, SearchRead, SearchWrite}
	}
	return []SearchTable{target}
}

func (sym *Symbols) table(t SearchTable) *Table {
	switch t {
	case SearchLabel:
		return sym.label
	case SearchRead:
		return sym.read
	case SearchWrite:
		return sym.write
	}
	return nil
}

// Search returns the address of the symbol. Returns nil if the symbol
// cannot be found.
//
// Matching is case-insensitive and when the target is SearchAll the tables
// are searched in the order: labels, read, write.
func (sym *Symbols) Search(symbol string, target SearchTable) *SearchResults {
	symbol = strings.ToUpper(symbol)
	for _, t := range sym.tables(target) {
		if norm, addr, ok := sym.table(t).search(symbol); ok {
			return &SearchResults{Table: t, Symbol: norm, Address: addr}
		}
	}
	return nil
}

// ReverseSearch returns the symbol for the address. Returns nil if there is
// no symbol for the address.
//
// When the target is SearchAll the tables are searched in the order: labels,
// read, write.
func (sym *Symbols) ReverseSearch(addr uint16, target SearchTable) *SearchResults {
	for _, t := range sym.tables(target) {
		if s, ok := sym.table(t).entries[addr]; ok {
			return &SearchResults{Table: t, Symbol: s, Address: addr}
		}
	}
	return nil
}
