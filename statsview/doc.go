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

// Package statsview serves runtime statistics over HTTP while the emulation
// runs. It is only available when the statsview build tag is present:
//
//	go build -tags statsview
//
// The graphs are provided by github.com/go-echarts/statsview and are
// viewable at:
//
//	localhost:12600/debug/statsview
//
// Standard pprof statistics are at:
//
//	localhost:12600/debug/pprof/
package statsview
