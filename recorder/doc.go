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

// Package recorder handles the recording and playback of controller input.
//
// A Recorder is attached to the controller ports of the console and writes
// every controller event to a transcript. Each event is stamped with the
// number of CPU cycles since reset and a digest of the video output at the
// moment of the event.
//
// A Playback reads a transcript and is attached to the controller ports as
// the source of controller events. Events are handled at exactly the cycle
// they were recorded at and the video digest is checked for every event. A
// mismatch indicates that the emulation has diverged from the recording.
//
// Recordings are only valid from the moment the console is reset. Resetting
// the console during a recording will produce a transcript that cannot be
// played back.
package recorder
