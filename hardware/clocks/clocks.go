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

// Package clocks defines the constant values that define the speed of the
// main clock in the console and the relationship between the CPU and PPU
// clocks.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// Speed of the CPU clock in MHz.
const (
	NTSC = 1.789773
	PAL  = 1.662607
)

// The number of PPU dots for every CPU cycle.
const (
	NTSC_PPUDotsPerCycle = 3
	PAL_PPUDotsPerCycle  = 3.2
)

// Speed of the PPU dot clock in MHz.
const (
	NTSC_PPU = NTSC * NTSC_PPUDotsPerCycle
	PAL_PPU  = PAL * PAL_PPUDotsPerCycle
)

// NTSC_FPS is the number of frames per second produced by the NTSC PPU. A
// frame is 262 scanlines of 341 dots.
const NTSC_FPS = NTSC_PPU * 1000000 / (341 * 262)

// CyclesToSeconds converts a number of NTSC CPU cycles to seconds.
func CyclesToSeconds(cycles uint64) float64 {
	return float64(cycles) / (NTSC * 1000000)
}
