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

// Package digest produces SHA-1 hashes of the video output of the console.
// The hash of each frame is chained with the hash of the previous frame so
// the final value identifies the entire sequence of frames.
//
// Digests are useful for regression testing. A cartridge that is run for
// the same number of frames with the same input should always produce the
// same digest.
package digest
