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

package recorder

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/famicore/famicore/hardware/peripherals"
)

// transcript header format
// ------------------------
//
// famicore recording
// <cartridge hash>

const (
	lineMagic int = iota
	lineCartHash
	numHeaderLines
)

const magic = "famicore recording"

// transcript event format
// -----------------------
//
// <port> <button> <pressed>, <cycle>, <digest>

const (
	fieldEvent int = iota
	fieldCycle
	fieldHash
	numFields
)

const fieldSep = ", "

func writeHeader(output io.Writer, cartHash string) error {
	_, err := fmt.Fprintf(output, "%s\n%s\n", magic, cartHash)
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	return nil
}

func readHeader(lines []string) (string, error) {
	if len(lines) < numHeaderLines || lines[lineMagic] != magic {
		return "", fmt.Errorf("playback: not a famicore recording")
	}
	return lines[lineCartHash], nil
}

type entry struct {
	event peripherals.Event
	cycle uint64
	hash  string

	// the line in the transcript the entry appears
	line int
}

func (e entry) String() string {
	return strings.Join([]string{e.event.String(), strconv.FormatUint(e.cycle, 10), e.hash}, fieldSep)
}

func parseEntry(s string, line int) (entry, error) {
	toks := strings.Split(s, fieldSep)
	if len(toks) != numFields {
		return entry{}, fmt.Errorf("playback: expected %d fields at line %d", numFields, line)
	}

	e := entry{line: line}

	var err error

	e.event, err = peripherals.ParseEvent(toks[fieldEvent])
	if err != nil {
		return entry{}, fmt.Errorf("playback: line %d: %w", line, err)
	}

	e.cycle, err = strconv.ParseUint(toks[fieldCycle], 10, 64)
	if err != nil {
		return entry{}, fmt.Errorf("playback: line %d: %w", line, err)
	}

	e.hash = toks[fieldHash]

	return e, nil
}
