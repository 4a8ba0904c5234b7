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

// Package display implements the 64x32 monochrome framebuffer.
//
// Pixels are stored in row-major order, one byte per pixel, with pixel (x,y)
// at index x+y*Width. A pixel value is either zero or one.
//
// Sprites are drawn with Blit(). Every set bit in the sprite toggles the
// corresponding pixel in the framebuffer. If any pixel is changed from set to
// unset then the blit reports a collision. What happens to sprite pixels that
// fall outside the framebuffer depends on the SpriteEdge preference.
//
// The framebuffer has a redraw flag that is set whenever the pixels are
// changed. The presentation layer should call ConsumeRedraw() to see whether
// the framebuffer needs to be presented again.
package display
