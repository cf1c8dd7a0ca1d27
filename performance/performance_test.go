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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/clocks"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/performance"
	"github.com/famicore/famicore/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, acc > 99.0 && acc < 100.0, true)

	// ten seconds of NTSC frames
	frames := clocks.NTSC_FPS * 10
	fps, acc = performance.CalcFPS(int(frames), 10.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, acc > 99.0 && acc < 100.0, true)

	fps, _ = performance.CalcFPS(int(frames), 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	prg := make([]uint8, 0x4000)

	// loop: JMP loop
	copy(prg, []uint8{0x4c, 0x00, 0x80})
	copy(prg[0x3ffc:], []uint8{0x00, 0x80})

	cart, err := cartridge.NewNROM(prg, nil, cartridge.Horizontal)
	test.DemandSuccess(t, err)
	nes := hardware.NewNES()
	test.DemandSuccess(t, nes.AttachCartridge(cart))

	out := &strings.Builder{}
	r, err := performance.Check(out, performance.ProfileNone, nes, 200*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Duration >= 200*time.Millisecond, true)
	test.ExpectEquality(t, r.Frames > 0, true)
	test.ExpectEquality(t, strings.Contains(out.String(), "fps"), true)
}
