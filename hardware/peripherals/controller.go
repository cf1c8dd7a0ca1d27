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

import "strings"

// Button identifies one of the eight buttons of the standard controller.
// The order is the order in which the buttons are reported by the shift
// register.
type Button int

// List of buttons.
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	NumButtons
)

var buttonNames = [NumButtons]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return "unknown button"
	}
	return buttonNames[b]
}

// ParseButton returns the button with the name. The comparison ignores case.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(i), true
		}
	}
	return 0, false
}

// Controller is the standard controller. The state of the buttons is latched
// into a shift register while the strobe is high and shifted out one bit per
// read once the strobe is low.
type Controller struct {
	buttons [NumButtons]bool
	index   int
	strobe  bool
}

// NewController is the preferred method of initialisation for Controller.
func NewController() *Controller {
	return &Controller{}
}

// Press or release a button.
func (c *Controller) Press(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	c.buttons[b] = pressed
}

// Pressed returns true if the button is currently pressed.
func (c *Controller) Pressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	return c.buttons[b]
}

// Strobe sets the strobe line. The shift register is reset while the strobe
// is high.
func (c *Controller) Strobe(high bool) {
	c.strobe = high
	if c.strobe {
		c.index = 0
	}
}

// Read the next bit of the shift register. After all eight buttons have been
// read the register returns one.
func (c *Controller) Read() uint8 {
	var v uint8
	switch {
	case c.index >= int(NumButtons):
		v = 1
	case c.buttons[c.index]:
		v = 1
	}
	if c.strobe {
		c.index = 0
	} else if c.index < int(NumButtons) {
		c.index++
	}
	return v
}
