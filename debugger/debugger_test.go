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

package debugger_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/famicore/famicore/debugger"
	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/test"
)

type mockTerm struct {
	input  []string
	output []string
}

func (trm *mockTerm) Initialise() error { return nil }
func (trm *mockTerm) CleanUp()          {}
func (trm *mockTerm) Silence(bool)      {}
func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt string) (string, error) {
	if len(trm.input) == 0 {
		return "", terminal.UserQuit
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = "* " + s
	}
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

// newDebugger creates a debugger for a console running the program:
//
//	8000  LDA #$80
//	8002  STA $2000
//	8005  INX
//	8006  JMP $8005
//
// and an NMI handler at 9000 that increments zero page location 0x10.
func newDebugger(t *testing.T, input ...string) (*debugger.Debugger, *hardware.NES, *mockTerm) {
	t.Helper()

	prg := make([]uint8, 0x4000)
	copy(prg, []uint8{0xa9, 0x80, 0x8d, 0x00, 0x20, 0xe8, 0x4c, 0x05, 0x80})
	copy(prg[0x1000:], []uint8{0xe6, 0x10, 0x40})
	copy(prg[0x3ffa:], []uint8{0x00, 0x90, 0x00, 0x80, 0x00, 0x90})

	cart, err := cartridge.NewNROM(prg, nil, cartridge.Horizontal)
	test.DemandSuccess(t, err)

	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.AttachCartridge(cart))

	trm := &mockTerm{input: input}
	return debugger.NewDebugger(nes, trm), nes, trm
}

func TestLoop(t *testing.T) {
	dbg, nes, trm := newDebugger(t, "step", "", "# comment", "STEP 2", "quit", "step")
	test.ExpectEquality(t, dbg.State(), govern.Idle)
	test.ExpectSuccess(t, dbg.Loop())
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	test.ExpectEquality(t, len(trm.output), 2)
	test.ExpectEquality(t, trm.output[0], "8000  a9 80     LDA #$80")
	test.ExpectEquality(t, trm.output[1], "8005  e8        INX")

	// the final step command is not run after quit
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8006))
	test.ExpectEquality(t, len(trm.input), 1)
}

func TestLoopEndOfInput(t *testing.T) {
	dbg, _, _ := newDebugger(t, "step")
	test.ExpectSuccess(t, dbg.Loop())
	test.ExpectEquality(t, dbg.State(), govern.Ending)
}

func TestCommandErrors(t *testing.T) {
	dbg, _, trm := newDebugger(t, "frobnicate", "peek", "peek zz", "step 0", "press turbo", "press a 3")
	test.ExpectSuccess(t, dbg.Loop())
	test.ExpectEquality(t, len(trm.output), 6)
	for _, o := range trm.output {
		test.ExpectEquality(t, strings.HasPrefix(o, "* "), true, o)
	}

	err := dbg.RunCommand("frobnicate")
	test.ExpectEquality(t, errors.Is(err, debugger.UnknownCommand), true)
	err = dbg.RunCommand("poke 10")
	test.ExpectEquality(t, errors.Is(err, debugger.WrongArguments), true)
	err = dbg.RunCommand("poke 10 100")
	test.ExpectEquality(t, errors.Is(err, debugger.InvalidValue), true)
}

func TestBreakAndRun(t *testing.T) {
	dbg, nes, trm := newDebugger(t)

	test.ExpectSuccess(t, dbg.RunCommand("break $8006"))
	test.ExpectSuccess(t, dbg.RunCommand("break"))
	test.ExpectEquality(t, trm.contains("8006"), true)

	test.ExpectSuccess(t, dbg.RunCommand("run"))
	test.ExpectEquality(t, trm.contains("break at 8006 after 3 instructions"), true)
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(1))
	test.ExpectEquality(t, dbg.State(), govern.Paused)

	// toggle off and run for a limited number of instructions
	test.ExpectSuccess(t, dbg.RunCommand("break 8006"))
	test.ExpectSuccess(t, dbg.RunCommand("run 10"))
	test.ExpectEquality(t, trm.contains("halted after 10 instructions"), true)
	test.ExpectEquality(t, nes.CPU.X.Value(), uint8(6))

	test.ExpectSuccess(t, dbg.RunCommand("break 8005"))
	test.ExpectSuccess(t, dbg.RunCommand("break clear"))
	test.ExpectSuccess(t, dbg.RunCommand("break"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "no breakpoints")
}

func TestFrame(t *testing.T) {
	dbg, nes, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("frame 2"))
	test.ExpectEquality(t, nes.PPU.Frame, 2)
	test.ExpectEquality(t, nes.Mem.RAM[0x10], uint8(2))
	test.ExpectEquality(t, trm.contains("frame 2"), true)

	test.ExpectSuccess(t, dbg.RunCommand("break 9000"))
	test.ExpectSuccess(t, dbg.RunCommand("frame"))
	test.ExpectEquality(t, trm.contains("break at 9000"), true)
	test.ExpectEquality(t, nes.PPU.Frame, 2)
}

func TestPeekPoke(t *testing.T) {
	dbg, nes, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("poke 0x0300 de ad be ef"))
	test.ExpectEquality(t, nes.Mem.RAM[0x0303], uint8(0xef))

	test.ExpectSuccess(t, dbg.RunCommand("peek 0300 4"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "0300: de ad be ef")

	test.ExpectSuccess(t, dbg.RunCommand("peek 0300 18"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "0310: 00 00")

	test.ExpectFailure(t, dbg.RunCommand("peek 2002"))
}

func TestDisasm(t *testing.T) {
	dbg, _, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("disasm 8000 3"))
	test.ExpectEquality(t, len(trm.output), 3)
	test.ExpectEquality(t, trm.output[0], "> 8000  a9 80     LDA #$80")
	test.ExpectEquality(t, trm.output[2], "  8005  e8        INX")
}

func TestSymbols(t *testing.T) {
	dbg, _, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("disasm 8000 3"))
	test.ExpectEquality(t, trm.output[1], "  8002  8d 00 20  STA $2000  ; PPUCTRL")

	dbg.Symbols.AddLabel(0x8005, "loop")
	trm.output = trm.output[:0]
	test.ExpectSuccess(t, dbg.RunCommand("disasm loop 1"))
	test.DemandEquality(t, len(trm.output), 2)
	test.ExpectEquality(t, trm.output[0], "loop:")
	test.ExpectEquality(t, trm.output[1], "  8005  e8        INX")

	test.ExpectSuccess(t, dbg.RunCommand("symbol loop"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "loop = 8005 (label)")
	test.ExpectSuccess(t, dbg.RunCommand("symbol 2002"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "2002 = PPUSTATUS (read)")
	test.ExpectSuccess(t, dbg.RunCommand("symbol 0400"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "no symbol for 0400")
	test.ExpectSuccess(t, dbg.RunCommand("symbol"))
	test.ExpectEquality(t, trm.contains("Labels"), true)

	test.ExpectFailure(t, dbg.RunCommand("peek frobnicate"))
}

func TestMapAndPPU(t *testing.T) {
	dbg, _, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("map 0x0801"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "0801: RAM (primary 0001)")
	test.ExpectSuccess(t, dbg.RunCommand("map PPUSTATUS"))
	test.ExpectEquality(t, trm.output[len(trm.output)-1], "2002: PPU (primary 0002)")
	test.ExpectSuccess(t, dbg.RunCommand("map"))
	test.ExpectEquality(t, len(trm.output) > 3, true)

	trm.output = trm.output[:0]
	test.ExpectSuccess(t, dbg.RunCommand("ppu"))
	test.DemandEquality(t, len(trm.output), 2)
	test.ExpectEquality(t, trm.output[1], "background off scroll=0,0 vblank=false")
}

func TestPressAndReset(t *testing.T) {
	dbg, nes, _ := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("press start"))
	test.ExpectSuccess(t, dbg.RunCommand("press left 2"))
	test.ExpectEquality(t, nes.Ports.Player0.Pressed(peripherals.ButtonStart), true)
	test.ExpectEquality(t, nes.Ports.Player1.Pressed(peripherals.ButtonLeft), true)
	test.ExpectSuccess(t, dbg.RunCommand("release start"))
	test.ExpectEquality(t, nes.Ports.Player0.Pressed(peripherals.ButtonStart), false)

	test.ExpectSuccess(t, dbg.RunCommand("step 3"))
	test.ExpectSuccess(t, dbg.RunCommand("reset"))
	test.ExpectEquality(t, nes.CPU.PC.Address(), uint16(0x8000))
}

func TestHelp(t *testing.T) {
	dbg, _, trm := newDebugger(t)
	test.ExpectSuccess(t, dbg.RunCommand("help"))
	test.ExpectEquality(t, trm.contains("DISASM"), true)
	test.ExpectSuccess(t, dbg.RunCommand("help poke"))
	test.ExpectEquality(t, trm.contains("POKE address value [value...]"), true)
	test.ExpectFailure(t, dbg.RunCommand("help frobnicate"))
}

func TestScript(t *testing.T) {
	dbg, nes, trm := newDebugger(t)

	err := dbg.RunScriptString(`
		poke(0x10, 0x42)
		print(peek(0x10))
		step(2)
		print(reg("A"), reg("pc"))
		press("a")
		cmd("break 8006")
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, trm.contains("66"), true)
	test.ExpectEquality(t, trm.contains("128\t32773"), true)
	test.ExpectEquality(t, nes.Ports.Player0.Pressed(peripherals.ButtonA), true)
	test.ExpectEquality(t, trm.contains("breakpoint set at 8006"), true)

	test.ExpectFailure(t, dbg.RunScriptString(`reg("Q")`))
	test.ExpectFailure(t, dbg.RunScriptString(`cmd("frobnicate")`))
	test.ExpectFailure(t, dbg.RunScriptString(`this is not lua`))
}

func TestScriptFile(t *testing.T) {
	dbg, nes, _ := newDebugger(t)

	fn := filepath.Join(t.TempDir(), "frames.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("frame(3)\n"), 0o644))

	test.ExpectSuccess(t, dbg.RunCommand("script "+fn))
	test.ExpectEquality(t, nes.PPU.Frame, 3)

	test.ExpectFailure(t, dbg.RunCommand("script "+filepath.Join(t.TempDir(), "missing.lua")))
}

func TestMemviz(t *testing.T) {
	dbg, _, _ := newDebugger(t)

	s := &strings.Builder{}
	dbg.WriteMemviz(s)
	test.ExpectEquality(t, strings.Contains(s.String(), "digraph"), true)

	fn := filepath.Join(t.TempDir(), "state.dot")
	test.ExpectSuccess(t, dbg.RunCommand("memviz "+fn))
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}
