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

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Flag is the index of the register used for flag output.
const Flag = 0xf

// Registers is the set of general purpose registers.
type Registers [NumRegisters]Register

// NewRegisters is the preferred method of initialisation for Registers. All
// registers are zero.
func NewRegisters() Registers {
	var r Registers
	for i := range r {
		r[i] = NewRegister(0, fmt.Sprintf("V%X", i))
	}
	return r
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	for i := range r {
		r[i].Load(0)
	}
}

// SetFlag loads register 0xF with 1 or 0.
func (r *Registers) SetFlag(set bool) {
	if set {
		r[Flag].Load(1)
	} else {
		r[Flag].Load(0)
	}
}

// Values returns the value of every register.
func (r Registers) Values() [NumRegisters]uint8 {
	var v [NumRegisters]uint8
	for i := range r {
		v[i] = r[i].Value()
	}
	return v
}

func (r Registers) String() string {
	s := make([]string, len(r))
	for i := range r {
		s[i] = r[i].String()
	}
	return strings.Join(s, " ")
}
