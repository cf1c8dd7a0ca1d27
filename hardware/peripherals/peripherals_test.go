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

package peripherals_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/famicore/famicore/hardware/peripherals"
	"github.com/famicore/famicore/logger"
	"github.com/famicore/famicore/test"
)

func readAll(p *peripherals.Ports, address uint16) []uint8 {
	var r []uint8
	for range 10 {
		r = append(r, p.Read(address)&0x01)
	}
	return r
}

func TestControllerShiftRegister(t *testing.T) {
	p := peripherals.NewPorts()
	p.Player0.Press(peripherals.ButtonA, true)
	p.Player0.Press(peripherals.ButtonStart, true)
	p.Player1.Press(peripherals.ButtonRight, true)

	// strobe high then low to latch the buttons
	p.Write(peripherals.JOY1, 1)
	p.Write(peripherals.JOY1, 0)

	r := readAll(p, peripherals.JOY1)
	test.ExpectEquality(t, len(r), 10)
	for i, v := range []uint8{1, 0, 0, 1, 0, 0, 0, 0, 1, 1} {
		test.ExpectEquality(t, r[i], v, i)
	}

	r = readAll(p, peripherals.JOY2)
	for i, v := range []uint8{0, 0, 0, 0, 0, 0, 0, 1, 1, 1} {
		test.ExpectEquality(t, r[i], v, i)
	}

	// open bus bits
	test.ExpectEquality(t, p.Read(peripherals.JOY1)&0xe0, uint8(0x40))
}

func TestControllerStrobeHigh(t *testing.T) {
	p := peripherals.NewPorts()
	p.Player0.Press(peripherals.ButtonA, true)

	// while the strobe is high every read returns the A button
	p.Write(peripherals.JOY1, 1)
	for range 10 {
		test.ExpectEquality(t, p.Read(peripherals.JOY1)&0x01, uint8(1))
	}
}

func TestParseButton(t *testing.T) {
	b, ok := peripherals.ParseButton("start")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, b, peripherals.ButtonStart)
	test.ExpectEquality(t, b.String(), "Start")

	_, ok = peripherals.ParseButton("turbo")
	test.ExpectEquality(t, ok, false)
}

func TestIgnoredWrites(t *testing.T) {
	logger.Clear()
	p := peripherals.NewPorts()
	p.Write(0x4000, 0x30)
	p.Write(0x4000, 0x31)
	p.Write(0x4015, 0x0f)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, strings.Count(s.String(), "peripherals: writes to"), 2)
}

type eventLog struct {
	events []peripherals.Event
}

func (l *eventLog) RecordEvent(ev peripherals.Event) error {
	l.events = append(l.events, ev)
	return nil
}

func (l *eventLog) GetPlayback() (peripherals.Event, bool, error) {
	if len(l.events) == 0 {
		return peripherals.Event{}, false, nil
	}
	ev := l.events[0]
	l.events = l.events[1:]
	return ev, true, nil
}

func TestEvents(t *testing.T) {
	ev := peripherals.Event{Port: peripherals.PortPlayer1, Button: peripherals.ButtonSelect, Pressed: true}
	test.ExpectEquality(t, ev.String(), "P1 Select true")

	parsed, err := peripherals.ParseEvent(ev.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, parsed, ev)

	_, err = peripherals.ParseEvent("P2 Select true")
	test.ExpectEquality(t, errors.Is(err, peripherals.UnknownPort), true)
	_, err = peripherals.ParseEvent("P0 Turbo true")
	test.ExpectFailure(t, err)
	_, err = peripherals.ParseEvent("P0 A")
	test.ExpectFailure(t, err)

	p := peripherals.NewPorts()
	rec := &eventLog{}
	p.AttachEventRecorder(rec)

	test.ExpectSuccess(t, p.HandleEvent(ev))
	test.ExpectEquality(t, p.Player1.Pressed(peripherals.ButtonSelect), true)
	test.ExpectEquality(t, p.Player0.Pressed(peripherals.ButtonSelect), false)
	test.ExpectEquality(t, len(rec.events), 1)

	test.ExpectFailure(t, p.HandleEvent(peripherals.Event{Port: 5}))

	// playback events are handled by Step() and seen by the recorder
	p.AttachEventRecorder(nil)
	echo := &eventLog{}
	p.AttachEventRecorder(echo)
	p.AttachPlayback(&eventLog{events: []peripherals.Event{
		{Port: peripherals.PortPlayer0, Button: peripherals.ButtonA, Pressed: true},
		{Port: peripherals.PortPlayer1, Button: peripherals.ButtonSelect, Pressed: false},
	}})
	test.ExpectSuccess(t, p.Step())
	test.ExpectEquality(t, p.Player0.Pressed(peripherals.ButtonA), true)
	test.ExpectEquality(t, p.Player1.Pressed(peripherals.ButtonSelect), false)
	test.ExpectEquality(t, len(echo.events), 2)
}
