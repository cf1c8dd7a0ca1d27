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
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/hardware/memory/memorymap"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/symbols"
)

// Sentinel errors returned by RunCommand().
var (
	UnknownCommand = errors.New("unknown command")
	WrongArguments = errors.New("wrong arguments")
	InvalidValue   = errors.New("invalid value")
)

type command struct {
	name  string
	usage string
	help  string

	// the number of arguments accepted by the command. a maxArgs of -1 means
	// there is no upper limit
	minArgs int
	maxArgs int

	fn func(dbg *Debugger, args []string) error
}

var commandList []command
var commandIndex map[string]command

func init() {
	commandList = []command{
		{name: "STEP", usage: "STEP [count]", help: "execute one or more instructions", maxArgs: 1, fn: cmdStep},
		{name: "RUN", usage: "RUN [count]", help: "run until a breakpoint or for a maximum number of instructions", maxArgs: 1, fn: cmdRun},
		{name: "FRAME", usage: "FRAME [count]", help: "run until the start of the next frame or a breakpoint", maxArgs: 1, fn: cmdFrame},
		{name: "CPU", usage: "CPU", help: "show the CPU registers", fn: cmdCPU},
		{name: "PPU", usage: "PPU", help: "show the PPU state", fn: cmdPPU},
		{name: "MAP", usage: "MAP [address]", help: "show the memory map or the area an address belongs to", maxArgs: 1, fn: cmdMap},
		{name: "PEEK", usage: "PEEK address [count]", help: "show the contents of memory", minArgs: 1, maxArgs: 2, fn: cmdPeek},
		{name: "POKE", usage: "POKE address value [value...]", help: "write values to consecutive memory addresses", minArgs: 2, maxArgs: -1, fn: cmdPoke},
		{name: "DISASM", usage: "DISASM [address [count]]", help: "disassemble instructions starting at the address or the PC", maxArgs: 2, fn: cmdDisasm},
		{name: "BREAK", usage: "BREAK [address|CLEAR]", help: "toggle a breakpoint, clear all breakpoints or list breakpoints", maxArgs: 1, fn: cmdBreak},
		{name: "SYMBOL", usage: "SYMBOL [symbol|address]", help: "list all symbols or look up a symbol or address", maxArgs: 1, fn: cmdSymbol},
		{name: "PRESS", usage: "PRESS button [player]", help: "press a controller button (A, B, SELECT, START, UP, DOWN, LEFT, RIGHT)", minArgs: 1, maxArgs: 2, fn: cmdPress},
		{name: "RELEASE", usage: "RELEASE button [player]", help: "release a controller button", minArgs: 1, maxArgs: 2, fn: cmdRelease},
		{name: "RESET", usage: "RESET", help: "reset the console", fn: cmdReset},
		{name: "LOG", usage: "LOG [count]", help: "show the most recent log entries", maxArgs: 1, fn: cmdLog},
		{name: "MEMVIZ", usage: "MEMVIZ filename", help: "write a graphviz diagram of the CPU and PPU state", minArgs: 1, maxArgs: 1, fn: cmdMemviz},
		{name: "SCRIPT", usage: "SCRIPT filename", help: "run a Lua script", minArgs: 1, maxArgs: 1, fn: cmdScript},
		{name: "HELP", usage: "HELP [command]", help: "list commands or show help for a command", maxArgs: 1, fn: cmdHelp},
		{name: "QUIT", usage: "QUIT", help: "end the debugging session", fn: cmdQuit},
	}

	commandIndex = make(map[string]command, len(commandList))
	for _, c := range commandList {
		commandIndex[c.name] = c
	}
}

// parseAddress accepts a hexadecimal address or a symbol.
func (dbg *Debugger) parseAddress(s string) (uint16, error) {
	h := strings.TrimPrefix(strings.ToLower(s), "$")
	h = strings.TrimPrefix(h, "0x")
	v, err := strconv.ParseUint(h, 16, 16)
	if err == nil {
		return uint16(v), nil
	}

	if dbg.Symbols != nil {
		if r := dbg.Symbols.Search(s, symbols.SearchAll); r != nil {
			return r.Address, nil
		}
	}

	return 0, fmt.Errorf("%w: address %q", InvalidValue, s)
}

func parseValue(s string) (uint8, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "$")
	s = strings.TrimPrefix(s, "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: value %q", InvalidValue, s)
	}
	return uint8(v), nil
}

// parseCount returns the count in the first argument or the default value
// if there are no arguments.
func parseCount(args []string, idx int, def int) (int, error) {
	if len(args) <= idx {
		return def, nil
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: count %q", InvalidValue, args[idx])
	}
	return v, nil
}

// step the console once and print the result.
func (dbg *Debugger) step(show bool) error {
	nmi := dbg.nes.NMIPending()
	_, err := dbg.nes.Step(nil)
	if err != nil {
		return err
	}
	if show {
		if nmi {
			dbg.printLine(terminal.StyleInstrument, "NMI -> %04x", dbg.nes.CPU.PC.Address())
		} else {
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.nes.CPU.LastResult.String())
		}
	}
	return nil
}

func cmdStep(dbg *Debugger, args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return err
	}

	dbg.state = govern.Stepping
	defer func() { dbg.state = govern.Paused }()

	for i := range n {
		if err := dbg.step(i == n-1); err != nil {
			return err
		}
	}
	return nil
}

func cmdRun(dbg *Debugger, args []string) error {
	limit, err := parseCount(args, 0, dbg.RunLimit)
	if err != nil {
		return err
	}

	dbg.state = govern.Running
	defer func() { dbg.state = govern.Paused }()

	var count int
	var hit bool
	err = dbg.nes.Run(func() (govern.State, error) {
		count++
		if dbg.breakpoints.check(dbg.nes.CPU.PC.Address()) {
			hit = true
			return govern.Ending, nil
		}
		if count >= limit {
			return govern.Ending, nil
		}
		return dbg.state, nil
	})
	if err != nil {
		return err
	}

	if hit {
		dbg.printLine(terminal.StyleFeedback, "break at %04x after %d instructions", dbg.nes.CPU.PC.Address(), count)
	} else {
		dbg.printLine(terminal.StyleFeedback, "halted after %d instructions", count)
	}
	return nil
}

func cmdFrame(dbg *Debugger, args []string) error {
	n, err := parseCount(args, 0, 1)
	if err != nil {
		return err
	}

	dbg.state = govern.Running
	defer func() { dbg.state = govern.Paused }()

	target := dbg.nes.PPU.Frame + n
	for dbg.nes.PPU.Frame < target {
		if err := dbg.step(false); err != nil {
			return err
		}
		if dbg.breakpoints.check(dbg.nes.CPU.PC.Address()) {
			dbg.printLine(terminal.StyleFeedback, "break at %04x", dbg.nes.CPU.PC.Address())
			return nil
		}
	}

	dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.nes.PPU.Frame)
	return nil
}

func cmdCPU(dbg *Debugger, _ []string) error {
	dbg.printLine(terminal.StyleFeedback, "%s cycles=%d", dbg.nes.CPU, dbg.nes.CPU.Cycles)
	return nil
}

func cmdPPU(dbg *Debugger, _ []string) error {
	dbg.printLine(terminal.StyleFeedback, "%s", dbg.nes.PPU)
	bg := "off"
	if dbg.nes.PPU.ShowBackground() {
		bg = "on"
	}
	x, y := dbg.nes.PPU.ScrollOrigin()
	dbg.printLine(terminal.StyleFeedback, "background %s scroll=%d,%d vblank=%v", bg, x, y, dbg.nes.PPU.InVBlank())
	return nil
}

func cmdMap(dbg *Debugger, args []string) error {
	if len(args) == 0 {
		for _, l := range strings.Split(strings.TrimSuffix(memorymap.Summary(), "\n"), "\n") {
			dbg.printLine(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	address, err := dbg.parseAddress(args[0])
	if err != nil {
		return err
	}
	primary, area := memorymap.MapAddress(address)
	dbg.printLine(terminal.StyleFeedback, "%04x: %s (primary %04x)", address, area, primary)
	return nil
}

func cmdPeek(dbg *Debugger, args []string) error {
	address, err := dbg.parseAddress(args[0])
	if err != nil {
		return err
	}
	n, err := parseCount(args, 1, 1)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := range n {
		a := address + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleFeedback, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		v, err := dbg.nes.Mem.Peek(a)
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	dbg.printLine(terminal.StyleFeedback, "%s", s.String())

	return nil
}

func cmdPoke(dbg *Debugger, args []string) error {
	address, err := dbg.parseAddress(args[0])
	if err != nil {
		return err
	}
	for i, a := range args[1:] {
		v, err := parseValue(a)
		if err != nil {
			return err
		}
		err = dbg.nes.Mem.Write(address+uint16(i), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func cmdDisasm(dbg *Debugger, args []string) error {
	address := dbg.nes.CPU.PC.Address()
	if len(args) > 0 {
		var err error
		address, err = dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
	}
	n, err := parseCount(args, 1, 10)
	if err != nil {
		return err
	}

	for range n {
		e, err := disassembly.Decode(dbg.nes.Mem, address)
		if err != nil {
			return err
		}
		if dbg.Symbols != nil {
			if r := dbg.Symbols.ReverseSearch(address, symbols.SearchLabel); r != nil {
				dbg.printLine(terminal.StyleFeedback, "%s:", r.Symbol)
			}
		}
		marker := " "
		if address == dbg.nes.CPU.PC.Address() {
			marker = ">"
		}
		dbg.printLine(terminal.StyleFeedback, "%s %s", marker, e.Annotate(dbg.Symbols))
		address += uint16(e.ByteCount)
	}

	return nil
}

func cmdBreak(dbg *Debugger, args []string) error {
	if len(args) == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakpoints)
		return nil
	}

	if strings.EqualFold(args[0], "CLEAR") {
		dbg.breakpoints.clear()
		dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
		return nil
	}

	address, err := dbg.parseAddress(args[0])
	if err != nil {
		return err
	}
	if dbg.breakpoints.toggle(address) {
		dbg.printLine(terminal.StyleFeedback, "breakpoint set at %04x", address)
	} else {
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed from %04x", address)
	}
	return nil
}

func (dbg *Debugger) controllerEvent(args []string, pressed bool) error {
	b, ok := peripherals.ParseButton(args[0])
	if !ok {
		return fmt.Errorf("%w: button %q", InvalidValue, args[0])
	}

	player, err := parseCount(args, 1, 1)
	if err != nil {
		return err
	}
	if player < 1 || player > 2 {
		return fmt.Errorf("%w: player %d", InvalidValue, player)
	}

	return dbg.nes.Ports.HandleEvent(peripherals.Event{
		Port:    peripherals.PortID(player - 1),
		Button:  b,
		Pressed: pressed,
	})
}

func cmdPress(dbg *Debugger, args []string) error {
	return dbg.controllerEvent(args, true)
}

func cmdRelease(dbg *Debugger, args []string) error {
	return dbg.controllerEvent(args, false)
}

func cmdSymbol(dbg *Debugger, args []string) error {
	if dbg.Symbols == nil {
		return fmt.Errorf("no symbols")
	}

	if len(args) == 0 {
		var s strings.Builder
		dbg.Symbols.List(&s)
		for _, l := range strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n") {
			dbg.printLine(terminal.StyleFeedback, "%s", l)
		}
		return nil
	}

	if r := dbg.Symbols.Search(args[0], symbols.SearchAll); r != nil {
		dbg.printLine(terminal.StyleFeedback, "%s = %04x (%s)", r.Symbol, r.Address, r.Table)
		return nil
	}

	address, err := dbg.parseAddress(args[0])
	if err != nil {
		return err
	}

	found := false
	for _, t := range []symbols.SearchTable{symbols.SearchLabel, symbols.SearchRead, symbols.SearchWrite} {
		if r := dbg.Symbols.ReverseSearch(address, t); r != nil {
			dbg.printLine(terminal.StyleFeedback, "%04x = %s (%s)", address, r.Symbol, r.Table)
			found = true
		}
	}
	if !found {
		dbg.printLine(terminal.StyleFeedback, "no symbol for %04x", address)
	}

	return nil
}

func cmdReset(dbg *Debugger, _ []string) error {
	return dbg.nes.Reset()
}

func cmdLog(dbg *Debugger, args []string) error {
	n, err := parseCount(args, 0, 10)
	if err != nil {
		return err
	}

	s := &strings.Builder{}
	logger.Tail(s, n)
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		if l != "" {
			dbg.printLine(terminal.StyleFeedback, "%s", l)
		}
	}
	return nil
}

func cmdHelp(dbg *Debugger, args []string) error {
	if len(args) == 1 {
		cmd, ok := commandIndex[strings.ToUpper(args[0])]
		if !ok {
			return fmt.Errorf("%w: %s", UnknownCommand, args[0])
		}
		dbg.printLine(terminal.StyleHelp, "%s", cmd.usage)
		dbg.printLine(terminal.StyleHelp, "  %s", cmd.help)
		return nil
	}

	var names []string
	for _, c := range commandList {
		names = append(names, c.name)
	}
	sort.Strings(names)
	dbg.printLine(terminal.StyleHelp, "%s", strings.Join(names, " "))

	return nil
}

func cmdQuit(dbg *Debugger, _ []string) error {
	dbg.state = govern.Ending
	return nil
}
