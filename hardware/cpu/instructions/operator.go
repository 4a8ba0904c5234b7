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

package instructions

// Operator identifies an instruction.
type Operator int

// List of valid Operator values.
const (
	Unknown Operator = iota
	Cls
	Ret
	Jp
	Call
	SeImm
	SneImm
	SeReg
	LdImm
	AddImm
	LdReg
	Or
	And
	Xor
	AddReg
	Sub
	Shr
	Subn
	Shl
	SneReg
	LdI
	JpV0
	Rnd
	Drw
	Skp
	Sknp
	LdVxDT
	LdVxK
	LdDTVx
	LdSTVx
	AddIVx
	LdFVx
	Bcd
	StoreRegs
	LoadRegs

	// NumOperators is the number of operators including Unknown
	NumOperators
)

func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return "???"
	}
	return Definitions[o].Mnemonic
}
