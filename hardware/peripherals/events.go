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

package peripherals

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// UnknownPort is returned when an event refers to a port that does not exist.
var UnknownPort = errors.New("unknown port")

// PortID identifies one of the two controller ports.
type PortID int

// List of valid PortID values.
const (
	PortPlayer0 PortID = iota
	PortPlayer1
)

func (id PortID) String() string {
	switch id {
	case PortPlayer0:
		return "P0"
	case PortPlayer1:
		return "P1"
	}
	return "unknown port"
}

// ParsePortID converts the result of PortID.String() to a PortID.
func ParsePortID(s string) (PortID, error) {
	switch strings.ToUpper(s) {
	case "P0":
		return PortPlayer0, nil
	case "P1":
		return PortPlayer1, nil
	}
	return 0, fmt.Errorf("peripherals: %w: %s", UnknownPort, s)
}

// Event is a change of state of a controller button.
type Event struct {
	Port    PortID
	Button  Button
	Pressed bool
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %s %v", ev.Port, ev.Button, ev.Pressed)
}

// ParseEvent converts the result of Event.String() to an Event.
func ParseEvent(s string) (Event, error) {
	f := strings.Fields(s)
	if len(f) != 3 {
		return Event{}, fmt.Errorf("peripherals: malformed event (%s)", s)
	}

	var ev Event
	var err error

	ev.Port, err = ParsePortID(f[0])
	if err != nil {
		return Event{}, err
	}

	var ok bool
	ev.Button, ok = ParseButton(f[1])
	if !ok {
		return Event{}, fmt.Errorf("peripherals: unknown button (%s)", f[1])
	}

	ev.Pressed, err = strconv.ParseBool(f[2])
	if err != nil {
		return Event{}, fmt.Errorf("peripherals: %w", err)
	}

	return ev, nil
}

// EventRecorder implementations are notified of every event handled by
// Ports.HandleEvent().
type EventRecorder interface {
	RecordEvent(Event) error
}

// EventPlayback implementations supply events to Ports.Step(). The boolean
// return value is false when no event is ready.
type EventPlayback interface {
	GetPlayback() (Event, bool, error)
}
