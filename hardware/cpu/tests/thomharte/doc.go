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

// Package thomharte runs the 6502 single-step tests created and maintained
// by Thom Harte against the CPU.
//
// https://github.com/SingleStepTests/65x02
//
// The tests are large and are not included in the repository. Copy the JSON
// files for the instructions to be tested from the nes6502/v1 directory on
// Github into the testdata/nes6502/v1 directory of this package. The test is
// skipped if the directory does not exist.
//
// The nes6502 variant of the tests is used because decimal mode has no
// effect on arithmetic in the 2A03.
package thomharte
