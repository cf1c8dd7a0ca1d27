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

package symbols_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famicore/famicore/symbols"
	"github.com/famicore/famicore/test"
)

func TestCanonical(t *testing.T) {
	sym := symbols.NewSymbols()

	r := sym.ReverseSearch(0x2000, symbols.SearchWrite)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Symbol, "PPUCTRL")

	// PPUCTRL is write-only
	test.ExpectEquality(t, sym.ReverseSearch(0x2000, symbols.SearchRead) == nil, true)

	r = sym.ReverseSearch(0x2002, symbols.SearchAll)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Table, symbols.SearchRead)
	test.ExpectEquality(t, r.Symbol, "PPUSTATUS")

	r = sym.Search("reset", symbols.SearchAll)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Address, uint16(0xfffc))
	test.ExpectEquality(t, r.Symbol, "RESET")

	test.ExpectEquality(t, sym.Search("reset", symbols.SearchWrite) == nil, true)
	test.ExpectEquality(t, sym.Search("frobnicate", symbols.SearchAll) == nil, true)
	test.ExpectEquality(t, sym.SymbolWidth(), len("PPUSTATUS"))
	test.ExpectEquality(t, sym.LabelWidth(), 0)
}

func TestRead(t *testing.T) {
	sym := symbols.NewSymbols()
	err := sym.Read(strings.NewReader(`; symbols for test program
main:       $8000
nmi_handler 9000 ; comment
counter     0010
PPUCTRL2    2000
not_an_addr xyz
lonely
`))
	test.DemandSuccess(t, err)

	r := sym.ReverseSearch(0x8000, symbols.SearchAll)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Table, symbols.SearchLabel)
	test.ExpectEquality(t, r.Symbol, "main")

	r = sym.Search("NMI_HANDLER", symbols.SearchLabel)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Address, uint16(0x9000))

	r = sym.ReverseSearch(0x0010, symbols.SearchWrite)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Symbol, "counter")

	// canonical symbols are not replaced
	r = sym.ReverseSearch(0x2000, symbols.SearchWrite)
	test.DemandEquality(t, r != nil, true)
	test.ExpectEquality(t, r.Symbol, "PPUCTRL")

	test.ExpectEquality(t, sym.Search("not_an_addr", symbols.SearchAll) == nil, true)
	test.ExpectEquality(t, sym.LabelWidth(), len("nmi_handler"))

	var s strings.Builder
	sym.List(&s)
	test.ExpectEquality(t, strings.Contains(s.String(), "0x8000 -> main\n"), true)
	test.ExpectEquality(t, strings.Contains(s.String(), "0x2002 -> PPUSTATUS\n"), true)
}

func TestReadSymbolsFile(t *testing.T) {
	dir := t.TempDir()
	rom := filepath.Join(dir, "game.nes")
	test.ExpectEquality(t, symbols.SymbolsFilename(rom), filepath.Join(dir, "game.sym"))

	// missing symbols file is not an error
	sym := symbols.NewSymbols()
	test.ExpectSuccess(t, sym.ReadSymbolsFile(rom))

	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "game.sym"), []byte("start 8000\n"), 0o644))
	test.ExpectSuccess(t, sym.ReadSymbolsFile(rom))
	test.ExpectEquality(t, sym.Search("start", symbols.SearchLabel) != nil, true)
}
