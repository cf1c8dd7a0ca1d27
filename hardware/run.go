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

package hardware

import (
	"fmt"

	"github.com/famicore/famicore/debugger/govern"
)

// PerformanceBrake is the number of instructions between full continue checks
// in a continueCheck() implementation that is expensive to run. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation continues for
// as long as it returns govern.Running or govern.Paused.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		if !state.Continues() {
			return fmt.Errorf("nes: unsupported emulation state (%s) in Run() function", state)
		}
		if state == govern.Running {
			_, err = nes.Step(nil)
			if err != nil {
				return err
			}
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunFrame runs the emulation until the PPU begins the next frame.
func (nes *NES) RunFrame() error {
	return nes.RunForFrameCount(1, nil)
}

// RunForFrameCount runs the emulation for the specified number of frames. The
// continueCheck function is called at the start of every new frame and may
// be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := nes.PPU.Frame
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum < targetFrame && state != govern.Ending {
		_, err := nes.Step(nil)
		if err != nil {
			return err
		}

		if nes.PPU.Frame != frameNum {
			frameNum = nes.PPU.Frame
			state, err = continueCheck(frameNum)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
