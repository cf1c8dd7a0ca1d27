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

// Package logger is the central log for the emulation. Components log
// noteworthy events (writes to ROM, traffic to unconnected devices, DMA
// transfers) with a tag identifying the component and a detail string.
//
// Consecutive entries with identical tag and detail are collapsed into one
// entry with a repeat count. The number of entries is capped and the oldest
// entries are discarded once the cap is reached.
//
// Every logging request is made with a Permission. Use Allow if the request
// should always succeed.
package logger
