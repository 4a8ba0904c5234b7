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

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
)

// Dimensions of the framebuffer.
const (
	Width     = 64
	Height    = 32
	NumPixels = Width * Height
)

// Framebuffer is the display memory of the machine.
type Framebuffer struct {
	pixels Snapshot
	redraw bool
}

// NewFramebuffer is the preferred method of initialisation for Framebuffer.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Reset all pixels and the redraw flag.
func (fb *Framebuffer) Reset() {
	fb.pixels = Snapshot{}
	fb.redraw = false
}

// Clear all pixels and set the redraw flag.
func (fb *Framebuffer) Clear() {
	fb.pixels = Snapshot{}
	fb.redraw = true
}

// Blit draws the sprite at coordinates x and y. Each byte of the sprite is a
// row of eight pixels, most significant bit on the left. Returns true if any
// pixel was changed from set to unset.
//
// The redraw flag is set even if the sprite is empty.
func (fb *Framebuffer) Blit(x uint8, y uint8, sprite []uint8, edge preferences.SpriteEdge) bool {
	var collision bool

	for r, row := range sprite {
		py := int(y) + r
		if py >= Height {
			if edge == preferences.EdgeClip {
				break // for loop
			}
			py %= Height
		}

		for c := 0; c < 8; c++ {
			if row&(0x80>>c) == 0 {
				continue // for loop
			}

			px := int(x) + c
			if px >= Width {
				if edge == preferences.EdgeClip {
					break // for loop
				}
				px %= Width
			}

			i := px + py*Width
			if fb.pixels[i] == 1 {
				collision = true
			}
			fb.pixels[i] ^= 1
		}
	}

	fb.redraw = true

	return collision
}

// Pixel returns true if the pixel at x and y is set. Coordinates outside the
// framebuffer return false.
func (fb *Framebuffer) Pixel(x int, y int) bool {
	return fb.pixels.Pixel(x, y)
}

// Snapshot returns a copy of the framebuffer. The redraw flag is not
// affected.
func (fb *Framebuffer) Snapshot() Snapshot {
	return fb.pixels
}

// Redraw returns the state of the redraw flag without clearing it.
func (fb *Framebuffer) Redraw() bool {
	return fb.redraw
}

// ConsumeRedraw returns the state of the redraw flag and clears it.
func (fb *Framebuffer) ConsumeRedraw() bool {
	r := fb.redraw
	fb.redraw = false
	return r
}
