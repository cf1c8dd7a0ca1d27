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

package recorder

import (
	"fmt"
	"io"

	"github.com/famicore/famicore/digest"
	"github.com/famicore/famicore/frame"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/logger"
)

// Recorder writes controller events to a transcript. It implements the
// peripherals.EventRecorder interface.
type Recorder struct {
	nes    *hardware.NES
	output io.Writer
	digest *digest.Video

	events int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The transcript header is written immediately and the recorder is
// attached to the controller ports of the console.
func NewRecorder(output io.Writer, nes *hardware.NES, cartHash string) (*Recorder, error) {
	rec := &Recorder{
		nes:    nes,
		output: output,
		digest: digest.NewVideo(),
	}

	err := writeHeader(output, cartHash)
	if err != nil {
		return nil, err
	}

	nes.Ports.AttachEventRecorder(rec)
	logger.Log(logger.Allow, "recorder", "recording started")

	return rec, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("%d events recorded", rec.events)
}

// RecordEvent implements the peripherals.EventRecorder interface.
func (rec *Recorder) RecordEvent(ev peripherals.Event) error {
	rec.digest.AddFrame(frame.Render(rec.nes.PPU))

	e := entry{
		event: ev,
		cycle: rec.nes.CPU.Cycles,
		hash:  rec.digest.Hash(),
	}

	_, err := fmt.Fprintln(rec.output, e)
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	rec.events++

	return nil
}

// End the recording. The recorder is detached from the console.
func (rec *Recorder) End() {
	rec.nes.Ports.AttachEventRecorder(nil)
	logger.Logf(logger.Allow, "recorder", "recording ended (%s)", rec)
}
