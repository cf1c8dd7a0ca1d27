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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Video is a digest of a sequence of rendered frames.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash returns the current digest as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames added to the digest since the last
// reset.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// ResetDigest returns the digest to its initial state.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// AddFrame adds the image to the digest. The alpha channel is ignored.
func (dig *Video) AddFrame(img *image.RGBA) {
	b := img.Bounds()

	// the head of the pixel data is the digest of the previous frame
	l := len(dig.digest) + b.Dx()*b.Dy()*3
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}
	i := copy(dig.pixels, dig.digest[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			dig.pixels[i] = c.R
			dig.pixels[i+1] = c.G
			dig.pixels[i+2] = c.B
			i += 3
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
}
