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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// State is a copy of the machine state. It is produced by the Snapshot()
// function and is useful for testing and for inspecting a machine that is
// not running.
type State struct {
	Memory      [memory.Size]uint8
	V           [registers.NumRegisters]uint8
	I           uint16
	PC          uint16
	Stack       []uint16
	Delay       uint8
	Sound       uint8
	Framebuffer display.Snapshot
	Redraw      bool
	Keys        keypad.State
	Status      execution.Status
	Halted      bool
	Cycles      uint64
}

// Snapshot returns a copy of the machine state. The machine is unaffected.
func (m *Machine) Snapshot() State {
	return State{
		Memory:      m.Mem.Snapshot(),
		V:           m.CPU.V.Values(),
		I:           m.CPU.I.Address(),
		PC:          m.CPU.PC.Address(),
		Stack:       m.CPU.Stack.Entries(),
		Delay:       m.Timers.Delay(),
		Sound:       m.Timers.Sound(),
		Framebuffer: m.Display.Snapshot(),
		Redraw:      m.Display.Redraw(),
		Keys:        m.Keypad.Snapshot(),
		Status:      m.CPU.LastResult.Status,
		Halted:      m.CPU.Halted(),
		Cycles:      m.cycles,
	}
}
