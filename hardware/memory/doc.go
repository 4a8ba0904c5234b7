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

// Package memory implements the 4096 byte address space of the machine.
//
// The first 80 bytes of memory hold the built-in font. Each of the sixteen
// hexadecimal digits is a sprite five bytes high and the sprite for digit n
// begins at address FontOrigin + n*FontGlyphSize.
//
// Programs are loaded at ProgramOrigin. The largest program that can be
// loaded is therefore MaxProgramSize bytes.
//
// Addresses are twelve bits wide. All accesses are masked to twelve bits so
// an address beyond the end of memory wraps around to the beginning.
package memory
