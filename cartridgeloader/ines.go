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

package cartridgeloader

import (
	"bytes"
	"fmt"

	"github.com/famicore/famicore/hardware/memory/cartridge"
)

// the first four bytes of every iNES file.
var inesMagic = []byte{'N', 'E', 'S', 0x1a}

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 0x4000
	chrBankSize = 0x2000
)

// flags 6 bits.
const (
	flagVertical   = 0x01
	flagBattery    = 0x02
	flagTrainer    = 0x04
	flagFourScreen = 0x08
)

// Header is the decoded iNES header.
type Header struct {
	PRGBanks   int
	CHRBanks   int
	Mapper     int
	Mirroring  cartridge.Mirroring
	Battery    bool
	HasTrainer bool

	// the header uses the NES 2.0 extensions. the extended fields are not
	// decoded
	NES2 bool
}

func (h Header) String() string {
	return fmt.Sprintf("mapper %d, %dx16KB PRG, %dx8KB CHR, %s mirroring",
		h.Mapper, h.PRGBanks, h.CHRBanks, h.Mirroring)
}

// INES is the decoded content of an iNES file.
type INES struct {
	Header  Header
	Trainer []uint8
	PRG     []uint8
	CHR     []uint8
}

// ParseINES decodes the data of an iNES file.
func ParseINES(data []byte) (*INES, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(inesMagic)], inesMagic) {
		return nil, fmt.Errorf("cartridgeloader: %w", NotINES)
	}

	flags6 := data[6]
	flags7 := data[7]

	h := Header{
		PRGBanks:   int(data[4]),
		CHRBanks:   int(data[5]),
		Battery:    flags6&flagBattery == flagBattery,
		HasTrainer: flags6&flagTrainer == flagTrainer,
		NES2:       flags7&0x0c == 0x08,
	}

	// the high nibble of flags 7 is only reliable for NES 2.0 or for headers
	// where the padding bytes are zero. some old dumping tools wrote text
	// into the padding
	h.Mapper = int(flags6 >> 4)
	if h.NES2 || bytes.Equal(data[12:16], []byte{0, 0, 0, 0}) {
		h.Mapper |= int(flags7 & 0xf0)
	}

	switch {
	case flags6&flagFourScreen == flagFourScreen:
		h.Mirroring = cartridge.FourScreen
	case flags6&flagVertical == flagVertical:
		h.Mirroring = cartridge.Vertical
	default:
		h.Mirroring = cartridge.Horizontal
	}

	ines := &INES{Header: h}

	data = data[headerSize:]
	take := func(n int, what string) ([]uint8, error) {
		if len(data) < n {
			return nil, fmt.Errorf("cartridgeloader: %w: %s needs %d bytes, %d remaining", Truncated, what, n, len(data))
		}
		b := data[:n]
		data = data[n:]
		return b, nil
	}

	var err error
	if h.HasTrainer {
		ines.Trainer, err = take(trainerSize, "trainer")
		if err != nil {
			return nil, err
		}
	}
	ines.PRG, err = take(h.PRGBanks*prgBankSize, "PRG ROM")
	if err != nil {
		return nil, err
	}
	ines.CHR, err = take(h.CHRBanks*chrBankSize, "CHR ROM")
	if err != nil {
		return nil, err
	}

	return ines, nil
}

// Cartridge decodes the loaded data and creates the cartridge.
func (cl Loader) Cartridge() (cartridge.Cartridge, error) {
	if !cl.HasLoaded() {
		return nil, fmt.Errorf("cartridgeloader: no data loaded")
	}

	ines, err := ParseINES(cl.Data)
	if err != nil {
		return nil, err
	}

	mapping := cl.Mapping
	if mapping == "" || mapping == "AUTO" {
		mapping = mapperNames[ines.Header.Mapper]
	}

	switch mapping {
	case "NROM":
		cart, err := cartridge.NewNROM(ines.PRG, ines.CHR, ines.Header.Mirroring)
		if err != nil {
			return nil, fmt.Errorf("cartridgeloader: %w", err)
		}
		return cart, nil
	}

	return nil, fmt.Errorf("cartridgeloader: %w: %d (%s)", UnsupportedMapper, ines.Header.Mapper, mapping)
}

// names of the iNES mappers. only NROM is supported but the names of common
// mappers are used in error messages.
var mapperNames = map[int]string{
	0: "NROM",
	1: "MMC1",
	2: "UxROM",
	3: "CNROM",
	4: "MMC3",
	7: "AxROM",
}
