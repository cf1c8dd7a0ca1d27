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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/logger"
)

// Symbols contains the label, read and write symbol tables.
type Symbols struct {
	label *Table
	read  *Table
	write *Table
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
// The tables contain the canonical symbols only.
func NewSymbols() *Symbols {
	sym := &Symbols{
		label: newTable(),
		read:  newTable(),
		write: newTable(),
	}
	sym.canonise()
	return sym
}

// AddLabel adds a label for a location in the program. An existing label
// for the location is replaced.
func (sym *Symbols) AddLabel(addr uint16, label string) {
	sym.label.add(addr, label, true)
}

// AddSymbol adds a symbol to both the read and write tables. Canonical
// symbols are not replaced.
func (sym *Symbols) AddSymbol(addr uint16, symbol string) {
	sym.read.add(addr, symbol, false)
	sym.write.add(addr, symbol, false)
}

// SymbolsFilename returns the name of the symbols file for a cartridge. The
// symbols file has the same name as the cartridge with the extension
// replaced by ".sym".
func SymbolsFilename(cartridgeFilename string) string {
	ext := filepath.Ext(cartridgeFilename)
	return fmt.Sprintf("%s.sym", strings.TrimSuffix(cartridgeFilename, ext))
}

// ReadSymbolsFile adds the symbols in the symbols file for the cartridge. It
// is not an error for the symbols file to not exist.
func (sym *Symbols) ReadSymbolsFile(cartridgeFilename string) error {
	fn := SymbolsFilename(cartridgeFilename)

	f, err := os.Open(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Logf(logger.Allow, "symbols", "no symbols file for %s", filepath.Base(cartridgeFilename))
			return nil
		}
		return fmt.Errorf("symbols: %w", err)
	}
	defer f.Close()

	err = sym.Read(f)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "symbols", "read symbols from %s", fn)
	return nil
}

// Read symbols from the reader. Each line has a symbol followed by a
// hexadecimal address. Lines that do not have that form are ignored, as is
// anything following a semicolon.
//
// Symbols for addresses in the cartridge area are labels.
func (sym *Symbols) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ln, _, _ := strings.Cut(scanner.Text(), ";")

		p := strings.Fields(ln)
		if len(p) < 2 {
			continue // for loop
		}

		symbol := strings.TrimSuffix(p[0], ":")
		if symbol == "" {
			continue // for loop
		}

		a := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(p[1]), "$"), "0x")
		address, err := strconv.ParseUint(a, 16, 16)
		if err != nil {
			continue // for loop
		}

		if uint16(address) >= memorymap.OriginCart {
			sym.AddLabel(uint16(address), symbol)
		} else {
			sym.AddSymbol(uint16(address), symbol)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("symbols: %w", err)
	}
	return nil
}

// LabelWidth returns the width of the widest label.
func (sym *Symbols) LabelWidth() int {
	return sym.label.maxWidth
}

// SymbolWidth returns the width of the widest read or write symbol.
func (sym *Symbols) SymbolWidth() int {
	return max(sym.read.maxWidth, sym.write.maxWidth)
}

// List all symbols to the writer.
func (sym *Symbols) List(output io.Writer) {
	fmt.Fprintf(output, "Labels\n------\n%s", sym.label)
	fmt.Fprintf(output, "\nRead Symbols\n------------\n%s", sym.read)
	fmt.Fprintf(output, "\nWrite Symbols\n-------------\n%s", sym.write)
}
