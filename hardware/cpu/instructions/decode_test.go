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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestFields(t *testing.T) {
	ins := instructions.Decode(0xd12f)
	test.ExpectEquality(t, ins.Operator, instructions.Drw)
	test.ExpectEquality(t, ins.X, uint8(0x1))
	test.ExpectEquality(t, ins.Y, uint8(0x2))
	test.ExpectEquality(t, ins.N, uint8(0xf))
	test.ExpectEquality(t, ins.NN, uint8(0x2f))
	test.ExpectEquality(t, ins.NNN, uint16(0x12f))
	test.ExpectEquality(t, ins.String(), "D12F DRW")
}

func TestOperators(t *testing.T) {
	words := map[uint16]instructions.Operator{
		0x00e0: instructions.Cls,
		0x00ee: instructions.Ret,
		0x1234: instructions.Jp,
		0x2345: instructions.Call,
		0x3a12: instructions.SeImm,
		0x4a12: instructions.SneImm,
		0x5ab0: instructions.SeReg,
		0x6a12: instructions.LdImm,
		0x7a12: instructions.AddImm,
		0x8ab0: instructions.LdReg,
		0x8ab1: instructions.Or,
		0x8ab2: instructions.And,
		0x8ab3: instructions.Xor,
		0x8ab4: instructions.AddReg,
		0x8ab5: instructions.Sub,
		0x8ab6: instructions.Shr,
		0x8ab7: instructions.Subn,
		0x8abe: instructions.Shl,
		0x9ab0: instructions.SneReg,
		0xa123: instructions.LdI,
		0xb123: instructions.JpV0,
		0xca12: instructions.Rnd,
		0xdab5: instructions.Drw,
		0xea9e: instructions.Skp,
		0xeaa1: instructions.Sknp,
		0xfa07: instructions.LdVxDT,
		0xfa0a: instructions.LdVxK,
		0xfa15: instructions.LdDTVx,
		0xfa18: instructions.LdSTVx,
		0xfa1e: instructions.AddIVx,
		0xfa29: instructions.LdFVx,
		0xfa33: instructions.Bcd,
		0xfa55: instructions.StoreRegs,
		0xfa65: instructions.LoadRegs,
	}

	// every operator except Unknown is represented
	test.ExpectEquality(t, len(words), int(instructions.NumOperators)-1)

	for w, op := range words {
		test.ExpectEquality(t, instructions.Decode(w).Operator, op, w)
	}
}

func TestLowNibbleIgnored(t *testing.T) {
	test.ExpectEquality(t, instructions.Decode(0x5ab7).Operator, instructions.SeReg)
	test.ExpectEquality(t, instructions.Decode(0x9abf).Operator, instructions.SneReg)
}

func TestUnknown(t *testing.T) {
	for _, w := range []uint16{0x0000, 0x0123, 0x00e1, 0x8ab8, 0x8abf, 0xea9f, 0xe000, 0xf000, 0xfaff} {
		test.ExpectEquality(t, instructions.Decode(w).Operator, instructions.Unknown, w)
	}
}

func TestDefinitions(t *testing.T) {
	for op := instructions.Operator(0); op < instructions.NumOperators; op++ {
		test.ExpectEquality(t, instructions.Definitions[op].Operator, op)
	}
	test.ExpectEquality(t, instructions.Definitions[instructions.AddReg].Pattern, "8XY4")
	test.ExpectEquality(t, instructions.Definitions[instructions.AddReg].Category, instructions.Arithmetic)
	test.ExpectEquality(t, instructions.Decode(0x8014).Definition().String(), "8XY4 ADD (Arithmetic)")
}
