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

import "fmt"

// Instruction is a decoded instruction word.
type Instruction struct {
	Word     uint16
	Operator Operator

	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04X %s", ins.Word, ins.Operator)
}

// Definition returns the definition of the decoded operator.
func (ins Instruction) Definition() Definition {
	return Definitions[ins.Operator]
}

// Decode the instruction word. The operand fields are extracted whatever the
// operator.
func Decode(word uint16) Instruction {
	return Instruction{
		Word:     word,
		Operator: operator(word),
		X:        uint8(word>>8) & 0x0f,
		Y:        uint8(word>>4) & 0x0f,
		N:        uint8(word) & 0x0f,
		NN:       uint8(word),
		NNN:      word & 0x0fff,
	}
}

func operator(word uint16) Operator {
	switch word >> 12 {
	case 0x0:
		switch word & 0x00ff {
		case 0xe0:
			return Cls
		case 0xee:
			return Ret
		}
	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeImm
	case 0x4:
		return SneImm
	case 0x5:
		return SeReg
	case 0x6:
		return LdImm
	case 0x7:
		return AddImm
	case 0x8:
		switch word & 0x000f {
		case 0x0:
			return LdReg
		case 0x1:
			return Or
		case 0x2:
			return And
		case 0x3:
			return Xor
		case 0x4:
			return AddReg
		case 0x5:
			return Sub
		case 0x6:
			return Shr
		case 0x7:
			return Subn
		case 0xe:
			return Shl
		}
	case 0x9:
		return SneReg
	case 0xa:
		return LdI
	case 0xb:
		return JpV0
	case 0xc:
		return Rnd
	case 0xd:
		return Drw
	case 0xe:
		switch word & 0x00ff {
		case 0x9e:
			return Skp
		case 0xa1:
			return Sknp
		}
	case 0xf:
		switch word & 0x00ff {
		case 0x07:
			return LdVxDT
		case 0x0a:
			return LdVxK
		case 0x15:
			return LdDTVx
		case 0x18:
			return LdSTVx
		case 0x1e:
			return AddIVx
		case 0x29:
			return LdFVx
		case 0x33:
			return Bcd
		case 0x55:
			return StoreRegs
		case 0x65:
			return LoadRegs
		}
	}

	return Unknown
}
