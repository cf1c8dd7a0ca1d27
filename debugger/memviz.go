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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/hardware/cpu/execution"
	"github.com/famicore/famicore/hardware/cpu/registers"
	"github.com/famicore/famicore/hardware/peripherals"
)

// vizState is the part of the console that is included in the memviz
// diagram. The cartridge is omitted.
type vizState struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister
	Cycles uint64
	Last   *execution.Result

	Palette  *[32]uint8
	Frame    int
	Scanline int
	Dot      int

	Ports *peripherals.Ports
}

// WriteMemviz writes a graphviz diagram of the CPU and PPU to the writer.
func (dbg *Debugger) WriteMemviz(w io.Writer) {
	mc := dbg.nes.CPU
	p := dbg.nes.PPU
	memviz.Map(w, &vizState{
		PC:       mc.PC,
		A:        mc.A,
		X:        mc.X,
		Y:        mc.Y,
		SP:       mc.SP,
		Status:   mc.Status,
		Cycles:   mc.Cycles,
		Last:     &mc.LastResult,
		Palette:  &p.Palette,
		Frame:    p.Frame,
		Scanline: p.Scanline,
		Dot:      p.Dot,
		Ports:    dbg.nes.Ports,
	})
}

func cmdMemviz(dbg *Debugger, args []string) error {
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	dbg.WriteMemviz(f)
	if err := f.Close(); err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", args[0])
	return nil
}
