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

// Package test contains helper functions that remove common boilerplate from
// the package tests.
//
// The Expect functions record a test failure and carry on. The Demand
// functions stop the test immediately and should be used when later parts of
// the test depend on the value being correct. For example, the length of a
// slice must be demanded before the slice is indexed.
//
// Success and failure are defined by the type of the value being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but because a nil error is success we have to
// interpret an untyped nil in the same way.
//
// All functions take an optional list of tags. The tags are prefixed to the
// failure message and help identify which iteration of a loop failed.
//
// CompareWriter implements io.Writer and captures output for comparison
// against an expected string.
package test
