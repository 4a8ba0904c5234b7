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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.pc(), uint16(0x200))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0))
	test.ExpectFailure(t, m.mc.Halted())
}

func TestScenarioAdd(t *testing.T) {
	m := newMachine(t, 0x6005, 0x6103, 0x8014, 0x0000)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(8))
	test.ExpectEquality(t, m.v(0xf), uint8(0))
	test.ExpectEquality(t, m.pc(), uint16(0x206))
	test.ExpectEquality(t, m.mc.LastResult.Instruction.Operator, instructions.AddReg)
}

func TestSelfLoop(t *testing.T) {
	m := newMachine(t, 0x1200)
	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x200))
	test.ExpectSuccess(t, m.mc.LastResult.BranchTaken)
	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x200))
}

func TestCarry(t *testing.T) {
	for _, c := range []struct {
		a, b  uint8
		sum   uint8
		carry uint8
	}{
		{a: 0xff, b: 0x01, sum: 0x00, carry: 1},
		{a: 0xfe, b: 0x01, sum: 0xff, carry: 0},
		{a: 0x80, b: 0x80, sum: 0x00, carry: 1},
		{a: 0x00, b: 0x00, sum: 0x00, carry: 0},
		{a: 0xff, b: 0xff, sum: 0xfe, carry: 1},
	} {
		m := newMachine(t, 0x6000|uint16(c.a), 0x6100|uint16(c.b), 0x8014)
		m.steps(t, 3)
		test.ExpectEquality(t, m.v(0), c.sum, c.a, c.b)
		test.ExpectEquality(t, m.v(0xf), c.carry, c.a, c.b)
	}
}

func TestAddImmLeavesFlag(t *testing.T) {
	m := newMachine(t, 0x6f07, 0x60ff, 0x7002)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(0x01))
	test.ExpectEquality(t, m.v(0xf), uint8(0x07))
}

func TestBorrow(t *testing.T) {
	// 8XY5
	m := newMachine(t, 0x6005, 0x6103, 0x8015)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(2))
	test.ExpectEquality(t, m.v(0xf), uint8(1))

	m = newMachine(t, 0x6003, 0x6105, 0x8015)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(0xfe))
	test.ExpectEquality(t, m.v(0xf), uint8(0))

	// equal operands do not borrow
	m = newMachine(t, 0x6005, 0x6105, 0x8015)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(0))
	test.ExpectEquality(t, m.v(0xf), uint8(1))

	// 8XY7
	m = newMachine(t, 0x6003, 0x6105, 0x8017)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(2))
	test.ExpectEquality(t, m.v(0xf), uint8(1))

	m = newMachine(t, 0x6005, 0x6103, 0x8017)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(0xfe))
	test.ExpectEquality(t, m.v(0xf), uint8(0))
}

func TestShift(t *testing.T) {
	m := newMachine(t, 0x6081, 0x8006)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0), uint8(0x40))
	test.ExpectEquality(t, m.v(0xf), uint8(1))

	m = newMachine(t, 0x6081, 0x800e)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0), uint8(0x02))
	test.ExpectEquality(t, m.v(0xf), uint8(1))

	m = newMachine(t, 0x6040, 0x800e)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0), uint8(0x80))
	test.ExpectEquality(t, m.v(0xf), uint8(0))
}

func TestResultWinsOverFlag(t *testing.T) {
	// 8F04 with VF=0x20 and V0=0x10. no carry but the sum is kept
	m := newMachine(t, 0x6010, 0x6f20, 0x8f04)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0xf), uint8(0x30))

	// 8FF4 with VF=0x80 gives 0x00 with a carry. the sum is kept
	m = newMachine(t, 0x6f80, 0x8ff4)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0xf), uint8(0x00))

	// 8F05 with VF=0x30 and V1=0x10
	m = newMachine(t, 0x6110, 0x6f30, 0x8f15)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0xf), uint8(0x20))

	// 8F06 with VF=0x30. the shifted value is kept
	m = newMachine(t, 0x6f30, 0x8f06)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0xf), uint8(0x18))

	// 8F17 with VF=0x10 and V1=0x50
	m = newMachine(t, 0x6150, 0x6f10, 0x8f17)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0xf), uint8(0x40))

	// 8F0E with VF=0x81
	m = newMachine(t, 0x6f81, 0x8f0e)
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0xf), uint8(0x02))

	// the flag is still set when the destination is not VF
	m = newMachine(t, 0x60ff, 0x6101, 0x8014)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0), uint8(0x00))
	test.ExpectEquality(t, m.v(0xf), uint8(1))
}

func TestBitwise(t *testing.T) {
	m := newMachine(t, 0x60f0, 0x613c, 0x8011, 0x8012, 0x8013, 0x8210)
	m.step(t)
	m.step(t)
	m.step(t)
	test.ExpectEquality(t, m.v(0), uint8(0xfc))
	m.step(t)
	test.ExpectEquality(t, m.v(0), uint8(0x3c))
	m.step(t)
	test.ExpectEquality(t, m.v(0), uint8(0x00))
	m.step(t)
	test.ExpectEquality(t, m.v(2), uint8(0x3c))
}

func TestSkips(t *testing.T) {
	// 3XNN taken
	m := newMachine(t, 0x6a12, 0x3a12)
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x206))

	// 3XNN not taken
	m = newMachine(t, 0x6a12, 0x3a13)
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x204))

	// 4XNN
	m = newMachine(t, 0x6a12, 0x4a13)
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x206))

	// 5XY0 and 9XY0
	m = newMachine(t, 0x6a12, 0x6b12, 0x5ab0, 0x0000, 0x9ab0)
	m.steps(t, 4)
	test.ExpectEquality(t, m.pc(), uint16(0x20a))

	// low nibble of 5XY? is ignored
	m = newMachine(t, 0x5ab7)
	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x204))
}

func TestCallReturn(t *testing.T) {
	// call subroutine at 0x206 which returns immediately
	m := newMachine(t, 0x2206, 0x6001, 0x1204, 0x00ee)
	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x206))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 1)

	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x202))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)

	m.step(t)
	test.ExpectEquality(t, m.v(0), uint8(1))
}

func TestJumpOffset(t *testing.T) {
	m := newMachine(t, 0x6010, 0xb300)
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x310))
}

func TestIndex(t *testing.T) {
	m := newMachine(t, 0xa123, 0x6005, 0x6fff, 0xf01e)
	m.steps(t, 4)
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0x128))

	// VF is unaffected by FX1E
	test.ExpectEquality(t, m.v(0xf), uint8(0xff))
}

func TestFontAddress(t *testing.T) {
	m := newMachine(t, 0x600a, 0xf029)
	m.steps(t, 2)
	test.ExpectEquality(t, m.mc.I.Address(), uint16(50))
}

func TestBCD(t *testing.T) {
	m := newMachine(t, 0x60ff, 0xa300, 0xf033)
	m.steps(t, 3)
	test.ExpectEquality(t, m.mem.Read(0x300), uint8(2))
	test.ExpectEquality(t, m.mem.Read(0x301), uint8(5))
	test.ExpectEquality(t, m.mem.Read(0x302), uint8(5))
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0x300))

	m = newMachine(t, 0x6009, 0xa300, 0xf033)
	m.steps(t, 3)
	test.ExpectEquality(t, m.mem.Read(0x300), uint8(0))
	test.ExpectEquality(t, m.mem.Read(0x301), uint8(0))
	test.ExpectEquality(t, m.mem.Read(0x302), uint8(9))
}

func TestRegisterDumpLoad(t *testing.T) {
	m := newMachine(t,
		0x6011, 0x6122, 0x6233, 0x6344, // V0-V3
		0xa400,         // I = 0x400
		0xf355,         // dump V0-V3
		0x6000, 0x6100, // clobber V0 and V1
		0x6200, 0x6300, // clobber V2 and V3
		0xf365, // load V0-V3
	)

	m.steps(t, 6)
	test.ExpectEquality(t, m.mem.Read(0x400), uint8(0x11))
	test.ExpectEquality(t, m.mem.Read(0x403), uint8(0x44))
	test.ExpectEquality(t, m.mem.Read(0x404), uint8(0x00))
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0x400))

	m.steps(t, 5)
	test.ExpectEquality(t, m.v(0), uint8(0x11))
	test.ExpectEquality(t, m.v(1), uint8(0x22))
	test.ExpectEquality(t, m.v(2), uint8(0x33))
	test.ExpectEquality(t, m.v(3), uint8(0x44))
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0x400))
}

func TestMemoryWrap(t *testing.T) {
	// BCD at the very end of memory wraps around to the font
	m := newMachine(t, 0x60ff, 0xafff, 0xf033)
	m.steps(t, 3)
	test.ExpectEquality(t, m.mem.Read(0xfff), uint8(2))
	test.ExpectEquality(t, m.mem.Read(0x000), uint8(5))
	test.ExpectEquality(t, m.mem.Read(0x001), uint8(5))
}

func TestRandom(t *testing.T) {
	m := newMachine(t, 0xc00f, 0xc1f0)
	m.mc.SetRandomSource(fixedRandom(0xab))
	m.steps(t, 2)
	test.ExpectEquality(t, m.v(0), uint8(0x0b))
	test.ExpectEquality(t, m.v(1), uint8(0xa0))
}

func TestDraw(t *testing.T) {
	// draw the glyph for zero twice at the same position
	m := newMachine(t, 0x6000, 0xf029, 0x6a05, 0x6b07, 0xdab5, 0xdab5)
	m.steps(t, 4)
	blank := m.fb.Snapshot()

	m.step(t)
	test.ExpectEquality(t, m.v(0xf), uint8(0))
	test.ExpectSuccess(t, m.fb.Pixel(5, 7))
	test.ExpectSuccess(t, m.fb.ConsumeRedraw())
	test.ExpectEquality(t, m.fb.Snapshot().Count(), 14)

	m.step(t)
	test.ExpectEquality(t, m.v(0xf), uint8(1))
	test.ExpectEquality(t, m.fb.Snapshot(), blank)
	test.ExpectSuccess(t, m.fb.ConsumeRedraw())
	test.ExpectEquality(t, m.mc.I.Address(), uint16(0))
}

func TestDrawClearsFlag(t *testing.T) {
	// VF is cleared before a draw that has no collision
	m := newMachine(t, 0x6f01, 0x6000, 0xd005)
	m.steps(t, 3)
	test.ExpectEquality(t, m.v(0xf), uint8(0))
}

func TestClearScreen(t *testing.T) {
	m := newMachine(t, 0xd005, 0x00e0, 0x00e0)
	m.step(t)
	test.ExpectFailure(t, m.fb.Snapshot().Blank())
	m.fb.ConsumeRedraw()

	m.step(t)
	test.ExpectSuccess(t, m.fb.Snapshot().Blank())
	test.ExpectSuccess(t, m.fb.ConsumeRedraw())

	m.step(t)
	test.ExpectSuccess(t, m.fb.Snapshot().Blank())
	test.ExpectEquality(t, m.pc(), uint16(0x206))
}

func TestKeys(t *testing.T) {
	m := newMachine(t, 0x6a05, 0xea9e, 0x0000, 0xeaa1)
	m.keys[5] = true
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x206))

	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x208))

	// key index taken from the low nibble of the register
	m = newMachine(t, 0x6a15, 0xea9e)
	m.keys[5] = true
	m.steps(t, 2)
	test.ExpectEquality(t, m.pc(), uint16(0x206))
}

func TestWaitForKey(t *testing.T) {
	m := newMachine(t, 0xf30a)

	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x200))
	test.ExpectEquality(t, m.mc.LastResult.Status, execution.WaitingForKey)

	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x200))

	// the lowest numbered key is chosen
	m.keys[0xc] = true
	m.keys[0x7] = true
	m.step(t)
	test.ExpectEquality(t, m.pc(), uint16(0x202))
	test.ExpectEquality(t, m.v(3), uint8(0x7))
	test.ExpectEquality(t, m.mc.LastResult.Status, execution.Running)
}

func TestTimers(t *testing.T) {
	m := newMachine(t, 0x6020, 0xf015, 0xf018, 0xf207)
	m.steps(t, 4)
	test.ExpectEquality(t, m.tmr.Delay(), uint8(0x20))
	test.ExpectEquality(t, m.tmr.Sound(), uint8(0x20))
	test.ExpectEquality(t, m.v(2), uint8(0x20))
}

func TestUnknownOpcodeSkip(t *testing.T) {
	m := newMachine(t, 0x0123, 0x6001)

	err := m.mc.ExecuteInstruction(m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: unknown opcode (0x0123 at 0x200)")
	test.ExpectEquality(t, m.mc.LastResult.Error, err.Error())
	test.ExpectEquality(t, m.pc(), uint16(0x202))
	test.ExpectFailure(t, m.mc.Halted())

	m.step(t)
	test.ExpectEquality(t, m.v(0), uint8(1))
}

func TestUnknownOpcodeHalt(t *testing.T) {
	m := newMachine(t, 0xffff)
	test.DemandSuccess(t, m.env.Prefs.FaultPolicy.Set("HALT"))

	err := m.mc.ExecuteInstruction(m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, m.pc(), uint16(0x200))
	test.ExpectSuccess(t, m.mc.Halted())
	test.ExpectEquality(t, m.mc.LastResult.Status, execution.Halted)

	// halted CPU does nothing
	test.ExpectSuccess(t, m.mc.ExecuteInstruction(m.keys))
	test.ExpectEquality(t, m.mc.LastResult.Status, execution.Halted)
	test.ExpectEquality(t, m.pc(), uint16(0x200))

	m.mc.Reset()
	test.ExpectFailure(t, m.mc.Halted())
}

func TestStackUnderflow(t *testing.T) {
	m := newMachine(t, 0x00ee)
	err := m.mc.ExecuteInstruction(m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.ExpectEquality(t, m.pc(), uint16(0x202))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), 0)
}

func TestStackOverflow(t *testing.T) {
	// a subroutine that calls itself
	m := newMachine(t, 0x2200)
	m.steps(t, registers.StackDepth)
	test.ExpectEquality(t, m.mc.Stack.Pointer(), registers.StackDepth)

	err := m.mc.ExecuteInstruction(m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.ExpectEquality(t, m.mc.Stack.Pointer(), registers.StackDepth)
	test.ExpectEquality(t, m.pc(), uint16(0x202))

	// with the HALT policy the machine stops on the call
	m = newMachine(t, 0x2200)
	test.DemandSuccess(t, m.env.Prefs.FaultPolicy.Set("HALT"))
	m.steps(t, registers.StackDepth)
	err = m.mc.ExecuteInstruction(m.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.ExpectSuccess(t, m.mc.Halted())
	test.ExpectEquality(t, m.pc(), uint16(0x200))
}

func TestString(t *testing.T) {
	m := newMachine(t, 0x60aa)
	m.step(t)
	test.ExpectEquality(t, m.mc.String(), "PC=0x202 I=0x000 SP=0 []\n"+
		"V0=0xaa V1=0x00 V2=0x00 V3=0x00 V4=0x00 V5=0x00 V6=0x00 V7=0x00\n"+
		"V8=0x00 V9=0x00 VA=0x00 VB=0x00 VC=0x00 VD=0x00 VE=0x00 VF=0x00\n")
}
