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

// Definition describes an instruction.
type Definition struct {
	Operator Operator

	// pattern of the instruction word. X and Y are register operands, N is a
	// four bit literal, NN an eight bit literal and NNN a twelve bit address
	Pattern string

	Mnemonic string
	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s (%s)", defn.Pattern, defn.Mnemonic, defn.Category)
}

// Definitions for every Operator, indexed by Operator.
var Definitions = [NumOperators]Definition{
	Unknown:   {Operator: Unknown, Pattern: "????", Mnemonic: "???", Category: Undefined},
	Cls:       {Operator: Cls, Pattern: "00E0", Mnemonic: "CLS", Category: Display},
	Ret:       {Operator: Ret, Pattern: "00EE", Mnemonic: "RET", Category: Flow},
	Jp:        {Operator: Jp, Pattern: "1NNN", Mnemonic: "JP", Category: Flow},
	Call:      {Operator: Call, Pattern: "2NNN", Mnemonic: "CALL", Category: Flow},
	SeImm:     {Operator: SeImm, Pattern: "3XNN", Mnemonic: "SE", Category: Flow},
	SneImm:    {Operator: SneImm, Pattern: "4XNN", Mnemonic: "SNE", Category: Flow},
	SeReg:     {Operator: SeReg, Pattern: "5XY0", Mnemonic: "SE", Category: Flow},
	LdImm:     {Operator: LdImm, Pattern: "6XNN", Mnemonic: "LD", Category: Arithmetic},
	AddImm:    {Operator: AddImm, Pattern: "7XNN", Mnemonic: "ADD", Category: Arithmetic},
	LdReg:     {Operator: LdReg, Pattern: "8XY0", Mnemonic: "LD", Category: Arithmetic},
	Or:        {Operator: Or, Pattern: "8XY1", Mnemonic: "OR", Category: Arithmetic},
	And:       {Operator: And, Pattern: "8XY2", Mnemonic: "AND", Category: Arithmetic},
	Xor:       {Operator: Xor, Pattern: "8XY3", Mnemonic: "XOR", Category: Arithmetic},
	AddReg:    {Operator: AddReg, Pattern: "8XY4", Mnemonic: "ADD", Category: Arithmetic},
	Sub:       {Operator: Sub, Pattern: "8XY5", Mnemonic: "SUB", Category: Arithmetic},
	Shr:       {Operator: Shr, Pattern: "8XY6", Mnemonic: "SHR", Category: Arithmetic},
	Subn:      {Operator: Subn, Pattern: "8XY7", Mnemonic: "SUBN", Category: Arithmetic},
	Shl:       {Operator: Shl, Pattern: "8XYE", Mnemonic: "SHL", Category: Arithmetic},
	SneReg:    {Operator: SneReg, Pattern: "9XY0", Mnemonic: "SNE", Category: Flow},
	LdI:       {Operator: LdI, Pattern: "ANNN", Mnemonic: "LD I", Category: Memory},
	JpV0:      {Operator: JpV0, Pattern: "BNNN", Mnemonic: "JP V0", Category: Flow},
	Rnd:       {Operator: Rnd, Pattern: "CXNN", Mnemonic: "RND", Category: Arithmetic},
	Drw:       {Operator: Drw, Pattern: "DXYN", Mnemonic: "DRW", Category: Display},
	Skp:       {Operator: Skp, Pattern: "EX9E", Mnemonic: "SKP", Category: Input},
	Sknp:      {Operator: Sknp, Pattern: "EXA1", Mnemonic: "SKNP", Category: Input},
	LdVxDT:    {Operator: LdVxDT, Pattern: "FX07", Mnemonic: "LD DT", Category: Timer},
	LdVxK:     {Operator: LdVxK, Pattern: "FX0A", Mnemonic: "LD K", Category: Input},
	LdDTVx:    {Operator: LdDTVx, Pattern: "FX15", Mnemonic: "LD DT", Category: Timer},
	LdSTVx:    {Operator: LdSTVx, Pattern: "FX18", Mnemonic: "LD ST", Category: Timer},
	AddIVx:    {Operator: AddIVx, Pattern: "FX1E", Mnemonic: "ADD I", Category: Memory},
	LdFVx:     {Operator: LdFVx, Pattern: "FX29", Mnemonic: "LD F", Category: Memory},
	Bcd:       {Operator: Bcd, Pattern: "FX33", Mnemonic: "LD B", Category: Memory},
	StoreRegs: {Operator: StoreRegs, Pattern: "FX55", Mnemonic: "LD [I]", Category: Memory},
	LoadRegs:  {Operator: LoadRegs, Pattern: "FX65", Mnemonic: "LD Vx", Category: Memory},
}
