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
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// Step executes exactly one instruction followed by one tick of the timers.
// Step never blocks.
//
// The returned error is a fault from the CPU. A fault is not fatal and the
// machine can continue to be stepped, although if the fault policy is HALT
// then the machine will do nothing until it is reset.
//
// The returned status is WaitingForKey if the instruction is waiting for a
// key press. The same instruction will be executed on the next call to Step().
func (m *Machine) Step() (execution.Status, error) {
	if m.CPU.Halted() {
		m.soundEdge = false
		return execution.Halted, nil
	}

	// the keypad is sampled once and only once per cycle
	err := m.CPU.ExecuteInstruction(m.Keypad.Snapshot())

	m.soundEdge = m.Timers.Tick()
	m.cycles++

	return m.CPU.LastResult.Status, err
}

// SoundEdge returns true if the sound timer changed from one to zero during
// the most recent call to Step().
func (m *Machine) SoundEdge() bool {
	return m.soundEdge
}

// FramebufferSnapshot returns a copy of the framebuffer. The redraw flag is
// not affected.
func (m *Machine) FramebufferSnapshot() display.Snapshot {
	return m.Display.Snapshot()
}

// ConsumeRedraw returns true if the framebuffer has changed since the last
// call to ConsumeRedraw(). The redraw flag is cleared.
func (m *Machine) ConsumeRedraw() bool {
	return m.Display.ConsumeRedraw()
}

// SetKeypad replaces the state of every key on the keypad. Safe to call from
// any goroutine.
func (m *Machine) SetKeypad(state [keypad.NumKeys]bool) {
	m.Keypad.Set(state)
}
