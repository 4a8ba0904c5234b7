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
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

// machine is a minimal machine for testing the CPU in isolation.
type machine struct {
	env  *environment.Environment
	mc   *cpu.CPU
	mem  *memory.Memory
	fb   *display.Framebuffer
	tmr  *timers.Timers
	keys keypad.State
}

// newMachine creates a CPU and loads the program words at the program origin.
func newMachine(t *testing.T, program ...uint16) *machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	// the test environment is not the main emulation and will not add
	// entries to the log
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)

	m := &machine{
		env: env,
		mem: memory.NewMemory(),
		fb:  display.NewFramebuffer(),
		tmr: timers.NewTimers(),
	}
	m.mc = cpu.NewCPU(env, m.mem, m.fb, m.tmr)

	b := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		b = append(b, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, m.mem.LoadProgram(b))

	return m
}

// step executes one instruction and demands that there was no fault.
func (m *machine) step(t *testing.T) {
	t.Helper()
	test.DemandSuccess(t, m.mc.ExecuteInstruction(m.keys))
}

// steps executes n instructions.
func (m *machine) steps(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m.step(t)
	}
}

func (m *machine) v(r int) uint8 {
	return m.mc.V[r].Value()
}

func (m *machine) pc() uint16 {
	return m.mc.PC.Address()
}

// fixedRandom always returns the same value.
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}
