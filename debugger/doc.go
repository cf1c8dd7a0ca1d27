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

// Package debugger implements a line oriented debugger for the console. A
// Debugger is created with NewDebugger() and started with Loop(). Commands
// are read from a terminal.Terminal implementation and are case
// insensitive. Type HELP for a list of commands.
//
// Addresses and values are hexadecimal, with or without a "$" or "0x"
// prefix. Addresses can also be given as a symbol. Counts are decimal.
//
// Lua scripts can be run with the SCRIPT command. The script has access to
// the following functions:
//
//	step([n])              execute n instructions (default 1)
//	frame([n])             run for n frames (default 1)
//	peek(address)          return the byte at address
//	poke(address, value)   write value to address
//	reg(name)              return the value of A, X, Y, SP, PC or P
//	press(button, [down], [player])
//	cmd(command)           run any debugger command
//	print(...)             print to the debugger terminal
package debugger
