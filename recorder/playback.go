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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/famicore/famicore/digest"
	"github.com/famicore/famicore/frame"
	"github.com/famicore/famicore/hardware"
	"github.com/famicore/famicore/hardware/peripherals"
)

// Mismatch is returned by GetPlayback() when the state of the console does
// not match the state at the time of the recording.
var Mismatch = errors.New("emulation does not match recording")

// Playback reperforms the controller events in a transcript. It implements
// the peripherals.EventPlayback interface.
type Playback struct {
	// hash of the cartridge the recording was made with
	CartHash string

	sequence []entry
	seqCt    int

	nes    *hardware.NES
	digest *digest.Video
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The entire transcript is read and validated.
func NewPlayback(input io.Reader) (*Playback, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("playback: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	plb := &Playback{
		digest: digest.NewVideo(),
	}

	plb.CartHash, err = readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		e, err := parseEntry(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		if len(plb.sequence) > 0 && e.cycle < plb.sequence[len(plb.sequence)-1].cycle {
			return nil, fmt.Errorf("playback: events out of order at line %d", i+1)
		}
		plb.sequence = append(plb.sequence, e)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d events", plb.seqCt, len(plb.sequence))
}

// Done returns true if every event in the transcript has been played back.
func (plb *Playback) Done() bool {
	return plb.seqCt >= len(plb.sequence)
}

// AttachToNES attaches the playback to the controller ports of the console.
//
// Note that this will reset the console.
func (plb *Playback) AttachToNES(nes *hardware.NES) error {
	if nes == nil {
		return fmt.Errorf("playback: no console")
	}
	plb.nes = nes
	plb.seqCt = 0
	plb.digest.ResetDigest()

	err := nes.Reset()
	if err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	nes.Ports.AttachPlayback(plb)

	return nil
}

// GetPlayback implements the peripherals.EventPlayback interface.
func (plb *Playback) GetPlayback() (peripherals.Event, bool, error) {
	if plb.Done() {
		return peripherals.Event{}, false, nil
	}

	e := plb.sequence[plb.seqCt]
	cycles := plb.nes.CPU.Cycles

	if cycles < e.cycle {
		return peripherals.Event{}, false, nil
	}

	if cycles > e.cycle {
		return peripherals.Event{}, false, fmt.Errorf("playback: %w: event at line %d expected at cycle %d (now %d)",
			Mismatch, e.line, e.cycle, cycles)
	}

	plb.seqCt++
	plb.digest.AddFrame(frame.Render(plb.nes.PPU))
	if plb.digest.Hash() != e.hash {
		return peripherals.Event{}, false, fmt.Errorf("playback: %w: unexpected video at line %d (cycle %d)",
			Mismatch, e.line, cycles)
	}

	return e.event, true, nil
}
