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
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/logger"
)

// newScriptState creates a Lua state with the debugger functions bound.
func (dbg *Debugger) newScriptState() *lua.LState {
	L := lua.NewState()

	bind := func(name string, fn lua.LGFunction) {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	bind("step", func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		for range n {
			if err := dbg.step(false); err != nil {
				L.RaiseError("%v", err)
			}
		}
		return 0
	})

	bind("frame", func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		target := dbg.nes.PPU.Frame + n
		for dbg.nes.PPU.Frame < target {
			if err := dbg.step(false); err != nil {
				L.RaiseError("%v", err)
			}
		}
		return 0
	})

	bind("peek", func(L *lua.LState) int {
		v, err := dbg.nes.Mem.Peek(uint16(L.CheckInt(1)))
		if err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(lua.LNumber(v))
		return 1
	})

	bind("poke", func(L *lua.LState) int {
		err := dbg.nes.Mem.Write(uint16(L.CheckInt(1)), uint8(L.CheckInt(2)))
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	})

	bind("reg", func(L *lua.LState) int {
		mc := dbg.nes.CPU
		var v int
		switch strings.ToUpper(L.CheckString(1)) {
		case "A":
			v = int(mc.A.Value())
		case "X":
			v = int(mc.X.Value())
		case "Y":
			v = int(mc.Y.Value())
		case "SP":
			v = int(mc.SP.Value())
		case "PC":
			v = int(mc.PC.Address())
		case "P":
			v = int(mc.Status.Value())
		default:
			L.ArgError(1, "unknown register")
		}
		L.Push(lua.LNumber(v))
		return 1
	})

	bind("press", func(L *lua.LState) int {
		b, ok := peripherals.ParseButton(L.CheckString(1))
		if !ok {
			L.ArgError(1, "unknown button")
		}
		down := L.OptBool(2, true)
		player := L.OptInt(3, 1)
		if player < 1 || player > 2 {
			L.ArgError(3, "player must be 1 or 2")
		}
		err := dbg.nes.Ports.HandleEvent(peripherals.Event{
			Port:    peripherals.PortID(player - 1),
			Button:  b,
			Pressed: down,
		})
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	})

	bind("cmd", func(L *lua.LState) int {
		if err := dbg.RunCommand(L.CheckString(1)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	})

	bind("print", func(L *lua.LState) int {
		var s []string
		for i := 1; i <= L.GetTop(); i++ {
			s = append(s, L.Get(i).String())
		}
		dbg.printLine(terminal.StyleFeedback, "%s", strings.Join(s, "\t"))
		return 0
	})

	return L
}

// RunScript runs the Lua script in the named file.
func (dbg *Debugger) RunScript(filename string) error {
	L := dbg.newScriptState()
	defer L.Close()

	logger.Logf(logger.Allow, "debugger", "running script %s", filename)

	if err := L.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunScriptString runs Lua source code.
func (dbg *Debugger) RunScriptString(source string) error {
	L := dbg.newScriptState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func cmdScript(dbg *Debugger, args []string) error {
	return dbg.RunScript(args[0])
}
