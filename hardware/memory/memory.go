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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	Size           = 4096
	AddressMask    = Size - 1
	FontOrigin     = 0x000
	FontGlyphSize  = 5
	ProgramOrigin  = 0x200
	MaxProgramSize = Size - ProgramOrigin
)

// LoadError is returned by LoadProgram() when the program is too large for
// memory.
const LoadError = "memory: program too large (%d bytes, maximum %d)"

// Font is the built-in glyph table for the hexadecimal digits 0 to F.
var Font = [16 * FontGlyphSize]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The returned memory has been reset.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears memory and seeds the font.
func (mem *Memory) Reset() {
	mem.data = [Size]uint8{}
	copy(mem.data[FontOrigin:], Font[:])
}

// Read the byte at address. The address is masked to twelve bits.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&AddressMask]
}

// Write the byte at address. The address is masked to twelve bits.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address&AddressMask] = data
}

// LoadProgram copies the program into memory at ProgramOrigin. Memory is
// unchanged if the program is too large.
func (mem *Memory) LoadProgram(program []uint8) error {
	if len(program) > MaxProgramSize {
		return curated.Errorf(LoadError, len(program), MaxProgramSize)
	}
	copy(mem.data[ProgramOrigin:], program)
	return nil
}

// Snapshot returns a copy of the entire address space.
func (mem *Memory) Snapshot() [Size]uint8 {
	return mem.data
}

// Dump returns the address range [from, to) as rows of sixteen bytes.
func (mem *Memory) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	for a := from &^ 0x0f; a < to && a < Size; a += 16 {
		s.WriteString(fmt.Sprintf("%03x:", a))
		for i := uint16(0); i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+i]))
		}
		s.WriteString("\n")
	}
	return s.String()
}
