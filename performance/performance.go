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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/famicore/famicore/debugger/govern"
	"github.com/famicore/famicore/hardware"
)

// Result of a call to Check().
type Result struct {
	Frames   int
	Duration time.Duration
	FPS      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Check the performance of the emulator. The emulation runs as quickly as
// possible for the duration and the result is written to output.
func Check(output io.Writer, profile Profile, nes *hardware.NES, duration time.Duration) (Result, error) {
	startFrame := nes.PPU.Frame
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()

		// only check for the end of the measurement period every
		// PerformanceBrake instructions
		performanceBrake := 0

		return nes.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				elapsed = time.Since(start)
				if elapsed >= duration {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	r := Result{
		Frames:   nes.PPU.Frame - startFrame,
		Duration: elapsed,
	}
	r.FPS, r.Accuracy = CalcFPS(r.Frames, elapsed.Seconds())

	if output != nil {
		fmt.Fprintln(output, r)
	}

	return r, nil
}
