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

// Package instructions defines the instruction set of the CPU and decodes
// instruction words.
//
// Every instruction is sixteen bits wide. The top four bits select the
// instruction family. For families 0x0, 0xE and 0xF the low byte selects the
// instruction within the family and for family 0x8 the low nibble does. All
// other families contain a single instruction. Note that families 0x5 and
// 0x9 ignore the low nibble.
//
// Decoding never fails. A word that matches no instruction decodes to the
// Unknown operator and it is up to the CPU to decide what to do with it.
package instructions
