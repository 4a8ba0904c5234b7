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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
)

// Fault patterns returned by ExecuteInstruction().
const (
	UnknownOpcode  = "cpu: unknown opcode (%#04x at %#03x)"
	StackOverflow  = "cpu: stack overflow (call at %#03x)"
	StackUnderflow = "cpu: stack underflow (return at %#03x)"
)

// Memory is the CPU's view of the address space.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Display is the CPU's view of the framebuffer.
type Display interface {
	Clear()
	Blit(x uint8, y uint8, sprite []uint8, edge preferences.SpriteEdge) bool
}

// Timers is the CPU's view of the countdown timers.
type Timers interface {
	Delay() uint8
	SetDelay(uint8)
	SetSound(uint8)
}

// RandomSource provides the random numbers for the RND instruction.
type RandomSource interface {
	Byte() uint8
}

// maximum height of a sprite.
const maxSpriteHeight = 15

// CPU implements the CPU of the machine.
type CPU struct {
	env *environment.Environment

	mem     Memory
	display Display
	timers  Timers
	rand    RandomSource

	V     registers.Registers
	I     registers.Index
	PC    registers.ProgramCounter
	Stack registers.Stack

	// the result of the most recently executed instruction
	LastResult execution.Result

	// the CPU has been halted by a fault. cleared by Reset()
	halted bool

	// sprite data is read from memory into this array before being blitted
	sprite [maxSpriteHeight]uint8
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// random numbers for the RND instruction are taken from the environment.
func NewCPU(env *environment.Environment, mem Memory, display Display, timers Timers) *CPU {
	mc := &CPU{
		env:     env,
		mem:     mem,
		display: display,
		timers:  timers,
		rand:    env.Random,
		V:       registers.NewRegisters(),
	}
	mc.Reset()
	return mc
}

// Reset the CPU registers and stack. The program counter is set to the
// program origin. A halted CPU is made runnable again.
func (mc *CPU) Reset() {
	mc.V.Reset()
	mc.I.Load(0)
	mc.PC.Load(memory.ProgramOrigin)
	mc.Stack.Reset()
	mc.LastResult.Reset()
	mc.halted = false
}

// SetRandomSource changes the source of random numbers for the RND
// instruction.
func (mc *CPU) SetRandomSource(rand RandomSource) {
	mc.rand = rand
}

// Halted returns true if the CPU has been halted by a fault.
func (mc *CPU) Halted() bool {
	return mc.halted
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s %s\n", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.Stack))
	for i := 0; i < registers.NumRegisters; i += 8 {
		r := make([]string, 8)
		for j := range r {
			r[j] = mc.V[i+j].String()
		}
		s.WriteString(strings.Join(r, " "))
		s.WriteString("\n")
	}
	return s.String()
}

// loadWithFlag writes the flag to VF and then writes the result, already
// held in vx, back to vx. when vx is VF the result is kept and the flag is
// lost.
func (mc *CPU) loadWithFlag(vx *registers.Register, flag bool) {
	result := vx.Value()
	mc.V.SetFlag(flag)
	vx.Load(result)
}

// fault records and logs the fault and then recovers according to the fault
// policy.
func (mc *CPU) fault(pattern string, values ...interface{}) error {
	err := curated.Errorf(pattern, values...)
	logger.Log(mc.env, "cpu", err)

	mc.LastResult.Error = err.Error()

	switch mc.env.Prefs.Live.FaultPolicy.Load().(preferences.FaultPolicy) {
	case preferences.FaultHalt:
		mc.halted = true
		mc.LastResult.Status = execution.Halted
	default:
		mc.PC.Add(2)
	}

	return err
}

// skipIf advances the program counter past the next instruction if the
// condition is true. Otherwise it advances the program counter to the next
// instruction.
func (mc *CPU) skipIf(condition bool) {
	if condition {
		mc.PC.Add(4)
		mc.LastResult.BranchTaken = true
	} else {
		mc.PC.Add(2)
	}
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. The keys argument is the state of the keypad for the
// duration of the instruction.
//
// The returned error is a fault. The CPU can continue after a fault unless it
// has been halted.
func (mc *CPU) ExecuteInstruction(keys keypad.State) error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.halted {
		mc.LastResult.Status = execution.Halted
		return nil
	}

	pc := mc.PC.Address()
	ins := instructions.Decode(uint16(mc.mem.Read(pc))<<8 | uint16(mc.mem.Read(pc+1)))
	mc.LastResult.Instruction = ins

	vx := &mc.V[ins.X]
	vy := mc.V[ins.Y].Value()

	switch ins.Operator {
	case instructions.Unknown:
		return mc.fault(UnknownOpcode, ins.Word, pc)

	case instructions.Cls:
		mc.display.Clear()
		mc.PC.Add(2)

	case instructions.Ret:
		a, ok := mc.Stack.Pop()
		if !ok {
			return mc.fault(StackUnderflow, pc)
		}
		mc.PC.Load(a + 2)
		mc.LastResult.BranchTaken = true

	case instructions.Jp:
		mc.PC.Load(ins.NNN)
		mc.LastResult.BranchTaken = true

	case instructions.Call:
		if !mc.Stack.Push(pc) {
			return mc.fault(StackOverflow, pc)
		}
		mc.PC.Load(ins.NNN)
		mc.LastResult.BranchTaken = true

	case instructions.SeImm:
		mc.skipIf(vx.Value() == ins.NN)

	case instructions.SneImm:
		mc.skipIf(vx.Value() != ins.NN)

	case instructions.SeReg:
		mc.skipIf(vx.Value() == vy)

	case instructions.LdImm:
		vx.Load(ins.NN)
		mc.PC.Add(2)

	case instructions.AddImm:
		_ = vx.Add(ins.NN)
		mc.PC.Add(2)

	case instructions.LdReg:
		vx.Load(vy)
		mc.PC.Add(2)

	case instructions.Or:
		vx.OR(vy)
		mc.PC.Add(2)

	case instructions.And:
		vx.AND(vy)
		mc.PC.Add(2)

	case instructions.Xor:
		vx.XOR(vy)
		mc.PC.Add(2)

	case instructions.AddReg:
		carry := vx.Add(vy)
		mc.loadWithFlag(vx, carry)
		mc.PC.Add(2)

	case instructions.Sub:
		noBorrow := vx.Subtract(vy)
		mc.loadWithFlag(vx, noBorrow)
		mc.PC.Add(2)

	case instructions.Shr:
		lsb := vx.ShiftRight()
		mc.loadWithFlag(vx, lsb)
		mc.PC.Add(2)

	case instructions.Subn:
		noBorrow := vx.ReverseSubtract(vy)
		mc.loadWithFlag(vx, noBorrow)
		mc.PC.Add(2)

	case instructions.Shl:
		msb := vx.ShiftLeft()
		mc.loadWithFlag(vx, msb)
		mc.PC.Add(2)

	case instructions.SneReg:
		mc.skipIf(vx.Value() != vy)

	case instructions.LdI:
		mc.I.Load(ins.NNN)
		mc.PC.Add(2)

	case instructions.JpV0:
		mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))
		mc.LastResult.BranchTaken = true

	case instructions.Rnd:
		vx.Load(mc.rand.Byte() & ins.NN)
		mc.PC.Add(2)

	case instructions.Drw:
		x := vx.Value()
		sprite := mc.sprite[:ins.N]
		for r := range sprite {
			sprite[r] = mc.mem.Read(mc.I.Address() + uint16(r))
		}
		mc.V.SetFlag(false)
		if mc.display.Blit(x, vy, sprite, mc.env.Prefs.Live.SpriteEdge.Load().(preferences.SpriteEdge)) {
			mc.V.SetFlag(true)
		}
		mc.PC.Add(2)

	case instructions.Skp:
		mc.skipIf(keys[vx.Value()&0x0f])

	case instructions.Sknp:
		mc.skipIf(!keys[vx.Value()&0x0f])

	case instructions.LdVxDT:
		vx.Load(mc.timers.Delay())
		mc.PC.Add(2)

	case instructions.LdVxK:
		if k, ok := keys.FirstDown(); ok {
			vx.Load(k)
			mc.PC.Add(2)
		} else {
			mc.LastResult.Status = execution.WaitingForKey
		}

	case instructions.LdDTVx:
		mc.timers.SetDelay(vx.Value())
		mc.PC.Add(2)

	case instructions.LdSTVx:
		mc.timers.SetSound(vx.Value())
		mc.PC.Add(2)

	case instructions.AddIVx:
		mc.I.Add(uint16(vx.Value()))
		mc.PC.Add(2)

	case instructions.LdFVx:
		mc.I.Load(memory.FontOrigin + uint16(vx.Value())*memory.FontGlyphSize)
		mc.PC.Add(2)

	case instructions.Bcd:
		v := vx.Value()
		i := mc.I.Address()
		mc.mem.Write(i, v/100)
		mc.mem.Write(i+1, (v/10)%10)
		mc.mem.Write(i+2, v%10)
		mc.PC.Add(2)

	case instructions.StoreRegs:
		i := mc.I.Address()
		for r := uint16(0); r <= uint16(ins.X); r++ {
			mc.mem.Write(i+r, mc.V[r].Value())
		}
		mc.PC.Add(2)

	case instructions.LoadRegs:
		i := mc.I.Address()
		for r := uint16(0); r <= uint16(ins.X); r++ {
			mc.V[r].Load(mc.mem.Read(i + r))
		}
		mc.PC.Add(2)

	default:
		panic(fmt.Sprintf("cpu: unhandled operator (%s)", ins.Operator))
	}

	return nil
}
