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

// Package modalflag wraps the flag package of the standard library with the
// concept of modes. A mode is a word on the command line that selects a
// different set of flags. For example:
//
//	famicore disasm -range 8000:80ff rom.nes
//
// Here DISASM is the mode and -range is a flag that only makes sense in that
// mode.
//
// A Modes instance is initialised with NewArgs(). The flags and sub-modes for
// the first layer of arguments are then added before calling Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "STEP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 1, "number of frames to run")
//		...
//	}
//
// The first sub-mode in the list is the default. If the first non-flag
// argument is not a sub-mode the default mode is selected and the argument
// is left for the mode to deal with. Sub-mode matching is case insensitive.
//
// Help is printed automatically when the -help (or -h) flag is found. The
// help text lists the flags and sub-modes available at that layer.
package modalflag
