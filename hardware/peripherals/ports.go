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
	"fmt"

	"github.com/famicore/famicore/logger"
)

// Addresses of the controller registers.
const (
	JOY1 = uint16(0x4016)
	JOY2 = uint16(0x4017)
)

// the upper bits of a controller read are open bus. most programs expect
// the high byte of the address to be seen there
const openBus = 0x40

// Ports is the IO area of the CPU address space.
type Ports struct {
	Player0 *Controller
	Player1 *Controller

	// addresses in the IO area that have been written to but which are not
	// emulated. each address is only logged once
	ignored map[uint16]bool

	recorders []EventRecorder
	playback  EventPlayback
}

// NewPorts is the preferred method of initialisation for Ports. Both
// controllers are connected.
func NewPorts() *Ports {
	return &Ports{
		Player0: NewController(),
		Player1: NewController(),
		ignored: make(map[uint16]bool),
	}
}

// Read implements the memory.Device interface.
func (p *Ports) Read(address uint16) uint8 {
	switch address {
	case JOY1:
		return p.Player0.Read() | openBus
	case JOY2:
		return p.Player1.Read() | openBus
	}
	return 0
}

// Write implements the memory.Device interface.
func (p *Ports) Write(address uint16, data uint8) {
	switch address {
	case JOY1:
		// the strobe line is shared by both controllers
		strobe := data&0x01 == 0x01
		p.Player0.Strobe(strobe)
		p.Player1.Strobe(strobe)
		return
	}

	if !p.ignored[address] {
		p.ignored[address] = true
		logger.Logf(logger.Allow, "peripherals", "writes to %#04x are ignored", address)
	}
}

// Controller returns the controller connected to the port.
func (p *Ports) Controller(id PortID) (*Controller, error) {
	switch id {
	case PortPlayer0:
		return p.Player0, nil
	case PortPlayer1:
		return p.Player1, nil
	}
	return nil, fmt.Errorf("peripherals: %w: %d", UnknownPort, id)
}

// HandleEvent applies the event to the controller it refers to. Attached
// recorders are notified after the event has been applied.
func (p *Ports) HandleEvent(ev Event) error {
	c, err := p.Controller(ev.Port)
	if err != nil {
		return err
	}
	c.Press(ev.Button, ev.Pressed)

	for _, r := range p.recorders {
		err := r.RecordEvent(ev)
		if err != nil {
			return fmt.Errorf("peripherals: %w", err)
		}
	}

	return nil
}

// AttachEventRecorder adds a recorder to the list of recorders notified by
// HandleEvent(). A nil recorder removes all recorders.
func (p *Ports) AttachEventRecorder(r EventRecorder) {
	if r == nil {
		p.recorders = p.recorders[:0]
		return
	}
	p.recorders = append(p.recorders, r)
}

// AttachPlayback sets the source of events for Step(). A nil playback
// removes the current playback.
func (p *Ports) AttachPlayback(pb EventPlayback) {
	p.playback = pb
}

// Step handles every event that the attached playback has ready. It should
// be called before every CPU instruction.
func (p *Ports) Step() error {
	if p.playback == nil {
		return nil
	}

	for {
		ev, ok, err := p.playback.GetPlayback()
		if err != nil {
			return fmt.Errorf("peripherals: %w", err)
		}
		if !ok {
			return nil
		}
		err = p.HandleEvent(ev)
		if err != nil {
			return err
		}
	}
}
