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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/famicore/famicore/cartridgeloader"
	"github.com/famicore/famicore/debugger"
	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/debugger/terminal"
	"github.com/famicore/famicore/debugger/terminal/keyterm"
	"github.com/famicore/famicore/debugger/terminal/plainterm"
	"github.com/famicore/famicore/digest"
	"github.com/famicore/famicore/disassembly"
	"github.com/famicore/famicore/frame"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/modalflag"
	"github.com/famicore/famicore/performance"
	"github.com/famicore/famicore/recorder"
	"github.com/famicore/famicore/statsview"
	"github.com/famicore/famicore/symbols"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the process.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "STEP", "PERFORMANCE")
	md.AdditionalHelp("famicore [mode] [flags] <rom.nes>")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! stats server not available in this build")
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "STEP":
		err = step(md, input, output)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// attach creates a console with the cartridge named by the only remaining
// argument. If hash is not empty the cartridge data must match it. Returns
// the hash of the cartridge data.
func attach(md *modalflag.Modes, mapping string, hash string) (*hardware.NES, string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, "", fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0), mapping)
	cl.Hash = hash
	nes := hardware.NewNES()
	if err := nes.AttachLoader(&cl); err != nil {
		return nil, "", err
	}
	return nes, cl.Hash, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	frames := md.AddInt("frames", 60, "number of frames to run")
	out := md.AddString("out", "", "write the final frame to an image file (png or bmp)")
	format := md.AddString("format", "", "image format. if empty the format is chosen from the filename")
	scale := md.AddInt("scale", 1, "image scaling")
	nametables := md.AddBool("nametables", false, "write all four nametables rather than the visible screen")
	viz := md.AddString("memviz", "", "write a graphviz diagram of the final console state")
	dig := md.AddBool("digest", false, "print a digest of every rendered frame")
	playback := md.AddString("playback", "", "play back controller input from a recording")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var plb *recorder.Playback
	var hash string
	if *playback != "" {
		f, err := os.Open(*playback)
		if err != nil {
			return err
		}
		plb, err = recorder.NewPlayback(f)
		f.Close()
		if err != nil {
			return err
		}
		hash = plb.CartHash
	}

	nes, _, err := attach(md, *mapping, hash)
	if err != nil {
		return err
	}

	if plb != nil {
		err = plb.AttachToNES(nes)
		if err != nil {
			return err
		}
	}

	video := digest.NewVideo()

	err = nes.RunForFrameCount(*frames, func(frameNum int) (govern.State, error) {
		if frameNum%60 == 0 {
			logger.Logf(logger.Allow, "famicore", "frame %d", frameNum)
		}
		if *dig {
			video.AddFrame(frame.Render(nes.PPU))
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "ran %d frames (%d cycles, %.3fs)\n", *frames, nes.CPU.Cycles, clocks.CyclesToSeconds(nes.CPU.Cycles))
	if plb != nil {
		fmt.Fprintf(md.Output, "playback %s\n", plb)
	}
	if *dig {
		fmt.Fprintf(md.Output, "digest %s\n", video.Hash())
	}

	if *out != "" {
		err = writeImage(nes, *out, *format, *scale, *nametables)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "frame written to %s\n", *out)
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		debugger.NewDebugger(nes, nil).WriteMemviz(f)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func writeImage(nes *hardware.NES, filename string, format string, scale int, nametables bool) error {
	var f frame.Format
	var err error
	if format == "" {
		f, err = frame.FormatFromFilename(filename)
	} else {
		f, err = frame.ParseFormat(format)
	}
	if err != nil {
		return err
	}

	img := frame.Render(nes.PPU)
	if nametables {
		img = frame.RenderNametables(nes.PPU)
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = frame.Encode(w, frame.Scale(img, scale), f)
	if err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	rng := md.AddString("range", "8000:ffff", "address range to disassemble (origin:memtop)")
	sym := md.AddBool("symbols", false, "annotate the disassembly with symbols")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	origin, memtop, err := parseRange(*rng)
	if err != nil {
		return err
	}

	nes, _, err := attach(md, *mapping, "")
	if err != nil {
		return err
	}

	dsm, err := disassembly.Disassemble(disassembly.MapperMemory{Mapper: nes.Cart.CPU()}, origin, memtop)
	if err != nil {
		return err
	}

	if *sym {
		dsm.Symbols = symbols.NewSymbols()
		err = dsm.Symbols.ReadSymbolsFile(md.GetArg(0))
		if err != nil {
			return err
		}
	}

	return dsm.Write(md.Output)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "generate profiling information: CPU, MEM, ALL, NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	nes, _, err := attach(md, *mapping, "")
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prof, nes, dur)
	return err
}

func parseRange(s string) (uint16, uint16, error) {
	var origin, memtop uint16
	n, err := fmt.Sscanf(strings.ToLower(s), "%x:%x", &origin, &memtop)
	if err != nil || n != 2 {
		return 0, 0, fmt.Errorf("invalid range (%s)", s)
	}
	if memtop < origin {
		return 0, 0, fmt.Errorf("invalid range (%s)", s)
	}
	return origin, memtop, nil
}

func step(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	mapping := md.AddString("mapping", "AUTO", "force use of cartridge mapping")
	termType := md.AddString("term", "PLAIN", "terminal type: PLAIN, KEY")
	script := md.AddString("script", "", "Lua script to run before the first command")
	record := md.AddString("record", "", "record controller input to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, hash, err := attach(md, *mapping, "")
	if err != nil {
		return err
	}

	if *record != "" {
		f, err := os.Create(*record)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := recorder.NewRecorder(f, nes, hash)
		if err != nil {
			return err
		}
		defer rec.End()
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "KEY":
		if keyterm.Available() {
			trm = &keyterm.KeyTerminal{}
			break // switch
		}
		fmt.Fprintln(output, "! key terminal not available. defaulting to plain")
		fallthrough
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(input, output)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg := debugger.NewDebugger(nes, trm)
	err = dbg.Symbols.ReadSymbolsFile(md.GetArg(0))
	if err != nil {
		return err
	}

	if *script != "" {
		err = dbg.RunScript(*script)
		if err != nil {
			return err
		}
	}

	return dbg.Loop()
}
