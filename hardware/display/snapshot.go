// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package display

import "strings"

// Snapshot is a copy of the framebuffer pixels.
type Snapshot [NumPixels]uint8

// Pixel returns true if the pixel at x and y is set. Coordinates outside the
// framebuffer return false.
func (s Snapshot) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return s[x+y*Width] != 0
}

// Count returns the number of pixels that are set.
func (s Snapshot) Count() int {
	var n int
	for _, p := range s {
		n += int(p)
	}
	return n
}

// Blank returns true if no pixels are set.
func (s Snapshot) Blank() bool {
	return s == Snapshot{}
}

// String returns the framebuffer as rows of text with a '#' for every set
// pixel and a '.' for every unset pixel.
func (s Snapshot) String() string {
	b := strings.Builder{}
	b.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if s[x+y*Width] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
