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

package disassembly

import (
	"fmt"
	"io"

	"github.com/famicore/famicore/hardware/cpu/bits"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/instructions"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/symbols"
)

// Memory is the interface to the address space being disassembled. Reading
// must not have side-effects.
type Memory interface {
	Peek(address uint16) (uint8, error)
}

// Entry is a single disassembled instruction.
type Entry struct {
	execution.Result

	// the opcode did not decode to a valid instruction
	Illegal bool
}

func (e Entry) String() string {
	if e.Illegal {
		return fmt.Sprintf("%04x  %02x        ???", e.Address, uint8(e.InstructionData))
	}
	return e.Result.String()
}

// Reference returns the address the instruction refers to and the symbol
// table most likely to have a name for it. Returns false if the instruction
// does not refer to an address that can be known without executing it.
func (e Entry) Reference() (uint16, symbols.SearchTable, bool) {
	if e.Illegal || e.Defn == nil {
		return 0, symbols.SearchAll, false
	}

	switch e.Defn.AddressingMode {
	case instructions.Relative:
		return e.Address + 2 + uint16(int8(e.InstructionData)), symbols.SearchLabel, true
	case instructions.Indirect:
		// the address of the pointer
		return e.InstructionData, symbols.SearchRead, true
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY,
		instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
	default:
		return 0, symbols.SearchAll, false
	}

	switch e.Defn.Effect {
	case instructions.Read:
		return e.InstructionData, symbols.SearchRead, true
	case instructions.Write, instructions.RMW:
		return e.InstructionData, symbols.SearchWrite, true
	}
	return e.InstructionData, symbols.SearchLabel, true
}

// Annotate returns the entry as a string followed by the symbol for the
// address the instruction refers to, if there is one. The symbols argument
// may be nil.
func (e Entry) Annotate(sym *symbols.Symbols) string {
	s := e.String()
	if sym == nil {
		return s
	}
	if addr, tbl, ok := e.Reference(); ok {
		if r := sym.ReverseSearch(addr, tbl); r != nil {
			s = fmt.Sprintf("%s  ; %s", s, r.Symbol)
		}
	}
	return s
}

// Disassembly is the result of a call to Disassemble().
type Disassembly struct {
	Origin  uint16
	Memtop  uint16
	Entries []Entry

	// symbols used to annotate the output of Write(). may be nil
	Symbols *symbols.Symbols
}

// Disassemble decodes the range of memory from origin to memtop inclusive.
// An instruction that begins in the range but ends beyond memtop is included.
func Disassemble(mem Memory, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, fmt.Errorf("disassembly: memtop (%#04x) is before origin (%#04x)", memtop, origin)
	}

	dsm := &Disassembly{Origin: origin, Memtop: memtop}

	address := uint32(origin)
	for address <= uint32(memtop) {
		e, err := Decode(mem, uint16(address))
		if err != nil {
			return nil, err
		}
		dsm.Entries = append(dsm.Entries, e)
		address += uint32(e.ByteCount)
	}

	return dsm, nil
}

// Decode the instruction at the address.
func Decode(mem Memory, address uint16) (Entry, error) {
	var e Entry
	e.Address = address
	e.Final = true

	opcode, err := mem.Peek(address)
	if err != nil {
		return e, fmt.Errorf("disassembly: %w", err)
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		e.Illegal = true
		e.ByteCount = 1
		e.InstructionData = uint16(opcode)
		return e, nil
	}

	e.Defn = defn
	e.ByteCount = defn.Bytes
	e.Cycles = defn.Cycles

	switch defn.Bytes {
	case 2:
		v, err := mem.Peek(address + 1)
		if err != nil {
			return e, fmt.Errorf("disassembly: %w", err)
		}
		e.InstructionData = uint16(v)
	case 3:
		lo, err := mem.Peek(address + 1)
		if err != nil {
			return e, fmt.Errorf("disassembly: %w", err)
		}
		hi, err := mem.Peek(address + 2)
		if err != nil {
			return e, fmt.Errorf("disassembly: %w", err)
		}
		e.InstructionData = bits.Word(lo, hi)
	}

	return e, nil
}

// Write the disassembly to the writer, one instruction per line. If the
// Symbols field is not nil then labelled instructions are preceded by the
// label on a line of its own.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		if dsm.Symbols != nil {
			if r := dsm.Symbols.ReverseSearch(e.Address, symbols.SearchLabel); r != nil {
				if _, err := fmt.Fprintf(w, "%s:\n", r.Symbol); err != nil {
					return fmt.Errorf("disassembly: %w", err)
				}
			}
		}
		if _, err := fmt.Fprintln(w, e.Annotate(dsm.Symbols)); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}

// FindAddress returns the entry that starts at the address. Returns false
// if no entry starts at that address.
func (dsm *Disassembly) FindAddress(address uint16) (Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Address == address {
			return e, true
		}
	}
	return Entry{}, false
}

// MapperMemory allows a cartridge mapper to be disassembled directly. Reads
// from cartridge memory have no side-effects.
type MapperMemory struct {
	cartridge.Mapper
}

// Peek implements the Memory interface.
func (m MapperMemory) Peek(address uint16) (uint8, error) {
	return m.Read(address), nil
}
