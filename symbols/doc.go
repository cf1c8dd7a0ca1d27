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

// Package symbols maps addresses to names. The canonical names of the
// hardware registers and interrupt vectors are always present. Additional
// symbols can be loaded from a symbols file.
//
// There are three symbol tables. Labels name locations in the program. Read
// and write symbols name addresses that are read from or written to. A
// hardware register can have a different name depending on whether it is
// being read or written.
package symbols
