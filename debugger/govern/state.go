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


package govern

// State is the value returned by the continue check of hardware.Run() and
// the current state of the debugger.
type State int

// List of emulation states. A Debugger is in the Idle state until its command
// loop starts.
const (
	Idle State = iota
	Paused
	Stepping
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown state"
}

// Continues returns true if hardware.Run() keeps emulating in this state.
func (s State) Continues() bool {
	return s == Running || s == Paused
}
