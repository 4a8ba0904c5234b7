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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/romloader"
)

// Machine is the emulated machine.
type Machine struct {
	Env *environment.Environment

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Timers  *timers.Timers
	Display *display.Framebuffer
	Keypad  *keypad.Keypad

	// the program image attached with AttachProgram(). reloaded on every
	// Reset()
	loader *romloader.Loader

	// number of cycles since the last reset
	cycles uint64

	// the sound timer reached zero during the most recent step
	soundEdge bool
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The machine is reset and ready to have a program loaded.
func NewMachine(env *environment.Environment) *Machine {
	m := &Machine{
		Env:     env,
		Mem:     memory.NewMemory(),
		Timers:  timers.NewTimers(),
		Display: display.NewFramebuffer(),
		Keypad:  keypad.NewKeypad(),
	}
	m.CPU = cpu.NewCPU(env, m.Mem, m.Display, m.Timers)

	// the attached program is nil so the error will always be nil
	_ = m.Reset()

	return m
}

// Reset the machine to its initial state. Memory is cleared and the font is
// seeded, all registers, timers and the framebuffer are zeroed and the
// program counter is set to the program origin.
//
// If a program has been attached with AttachProgram() then it is loaded
// again. The keypad is not affected.
func (m *Machine) Reset() error {
	m.Mem.Reset()
	m.CPU.Reset()
	m.Timers.Reset()
	m.Display.Reset()
	m.Keypad.Reset()
	m.Env.Random.Reset()
	m.cycles = 0
	m.soundEdge = false

	if m.loader != nil {
		return m.Mem.LoadProgram(m.loader.Data)
	}

	return nil
}

// LoadProgram copies the program into memory at the program origin. The
// machine is not reset. Returns an error with the memory.LoadError pattern if
// the program is too large, in which case memory is unchanged.
func (m *Machine) LoadProgram(program []uint8) error {
	return m.Mem.LoadProgram(program)
}

// AttachProgram loads the program image specified by the loader and resets
// the machine. The program is loaded again on every subsequent Reset().
func (m *Machine) AttachProgram(loader romloader.Loader) error {
	if err := loader.Load(); err != nil {
		return err
	}

	if err := m.Mem.LoadProgram(loader.Data); err != nil {
		return err
	}

	m.loader = &loader

	return m.Reset()
}

// Program returns the loader for the attached program. Returns false if no
// program has been attached.
func (m *Machine) Program() (romloader.Loader, bool) {
	if m.loader == nil {
		return romloader.Loader{}, false
	}
	return *m.loader, true
}

// Cycles returns the number of cycles executed since the last reset.
func (m *Machine) Cycles() uint64 {
	return m.cycles
}

func (m *Machine) String() string {
	s := strings.Builder{}
	s.WriteString(m.CPU.String())
	s.WriteString(fmt.Sprintf("%s\n", m.Timers))
	s.WriteString(fmt.Sprintf("keys: %s\n", m.Keypad.Snapshot()))
	s.WriteString(fmt.Sprintf("last: %s\n", m.CPU.LastResult))
	return s.String()
}
