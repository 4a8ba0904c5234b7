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

package registers

import "fmt"

// Index represents the I register in the CPU. The value is sixteen bits wide
// and is not masked. Memory accesses through the index register are masked by
// the memory package.
type Index struct {
	value uint16
}

// Label returns the name of the register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%#03x", i.value)
}

// Address returns the current value of the index register.
func (i Index) Address() uint16 {
	return i.value
}

// Load a value into the index register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add a value to the index register.
func (i *Index) Add(val uint16) {
	i.value += val
}
