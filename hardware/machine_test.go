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

package hardware_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)

	return hardware.NewMachine(env)
}

func TestInitialState(t *testing.T) {
	m := newMachine(t)
	s := m.Snapshot()

	test.ExpectEquality(t, s.PC, uint16(memory.ProgramOrigin))
	test.ExpectEquality(t, s.I, uint16(0))
	test.ExpectEquality(t, len(s.Stack), 0)
	test.ExpectSuccess(t, s.Framebuffer.Blank())
	test.ExpectFailure(t, s.Redraw)
	test.ExpectEquality(t, s.Memory[0], memory.Font[0])
	test.ExpectEquality(t, s.Memory[79], memory.Font[79])
	test.ExpectEquality(t, s.Memory[80], uint8(0))
}

func TestScenario(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x60, 0x05, 0x61, 0x03, 0x80, 0x14, 0x00, 0x00}))

	for i := 0; i < 3; i++ {
		status, err := m.Step()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, status, execution.Running)
	}

	s := m.Snapshot()
	test.ExpectEquality(t, s.V[0], uint8(8))
	test.ExpectEquality(t, s.V[0xf], uint8(0))
	test.ExpectEquality(t, s.PC, uint16(0x206))
	test.ExpectEquality(t, m.Cycles(), uint64(3))
}

func TestSelfLoop(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x12, 0x00}))

	_, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Snapshot().PC, uint16(0x200))
}

func TestLoadError(t *testing.T) {
	m := newMachine(t)
	err := m.LoadProgram(make([]uint8, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))
}

func TestSoundEdge(t *testing.T) {
	m := newMachine(t)

	// V0 = 1; ST = V0; loop
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x60, 0x01, 0xf0, 0x18, 0x12, 0x04}))

	_, _ = m.Step()
	test.ExpectFailure(t, m.SoundEdge())

	// the sound timer is set to one and then ticked to zero in the same
	// cycle
	_, _ = m.Step()
	test.ExpectEquality(t, m.Snapshot().Sound, uint8(0))
	test.ExpectSuccess(t, m.SoundEdge())

	_, _ = m.Step()
	test.ExpectFailure(t, m.SoundEdge())
}

func TestSoundEdgeFromOne(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x12, 0x00}))

	m.Timers.SetSound(1)
	_, _ = m.Step()
	test.ExpectEquality(t, m.Timers.Sound(), uint8(0))
	test.ExpectSuccess(t, m.SoundEdge())

	_, _ = m.Step()
	test.ExpectFailure(t, m.SoundEdge())
}

func TestDelayTimer(t *testing.T) {
	m := newMachine(t)

	// V0 = 3; DT = V0; loop
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x60, 0x03, 0xf0, 0x15, 0x12, 0x04}))
	_, _ = m.Step()
	_, _ = m.Step()
	test.ExpectEquality(t, m.Timers.Delay(), uint8(2))
	_, _ = m.Step()
	_, _ = m.Step()
	_, _ = m.Step()
	test.ExpectEquality(t, m.Timers.Delay(), uint8(0))
}

func TestWaitForKey(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0xf5, 0x0a}))

	status, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, execution.WaitingForKey)
	test.ExpectEquality(t, m.Snapshot().PC, uint16(0x200))

	var keys [16]bool
	keys[0xb] = true
	m.SetKeypad(keys)

	status, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, execution.Running)
	test.ExpectEquality(t, m.Snapshot().V[5], uint8(0xb))
	test.ExpectEquality(t, m.Snapshot().PC, uint16(0x202))
}

func TestResetClearsKeypad(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x12, 0x00}))

	var keys [16]bool
	keys[0x3] = true
	m.SetKeypad(keys)
	_, ok := m.Snapshot().Keys.FirstDown()
	test.ExpectSuccess(t, ok)

	test.DemandSuccess(t, m.Reset())
	_, ok = m.Snapshot().Keys.FirstDown()
	test.ExpectFailure(t, ok)
}

func TestRedraw(t *testing.T) {
	m := newMachine(t)

	// draw the font glyph for zero at 0,0
	test.DemandSuccess(t, m.LoadProgram([]uint8{0xd0, 0x05, 0x12, 0x02}))
	_, _ = m.Step()

	fb := m.FramebufferSnapshot()
	test.ExpectEquality(t, fb.Count(), 14)

	// taking a snapshot does not clear the redraw flag
	test.ExpectSuccess(t, m.ConsumeRedraw())
	test.ExpectFailure(t, m.ConsumeRedraw())

	_, _ = m.Step()
	test.ExpectFailure(t, m.ConsumeRedraw())
}

func TestHalt(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Env.Prefs.FaultPolicy.Set("HALT"))
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x60, 0x01, 0x00, 0x00}))

	m.Timers.SetDelay(10)
	_, _ = m.Step()

	status, err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, status, execution.Halted)
	test.ExpectEquality(t, m.Snapshot().PC, uint16(0x202))
	delay := m.Timers.Delay()

	// the faulting cycle still ticks the timers
	test.ExpectEquality(t, delay, uint8(8))

	// further steps do nothing, not even the timers
	status, err = m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, execution.Halted)
	test.ExpectEquality(t, m.Timers.Delay(), delay)
	test.ExpectSuccess(t, m.Snapshot().Halted)

	// reset makes the machine runnable again. the loaded program is lost
	// because it was not attached
	test.DemandSuccess(t, m.Reset())
	test.ExpectFailure(t, m.Snapshot().Halted)
	test.ExpectEquality(t, m.Snapshot().Memory[0x200], uint8(0))
}

func TestAttachProgram(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "counter.ch8")

	// V0 += 1; loop
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x70, 0x01, 0x12, 0x00}, 0o600))

	m := newMachine(t)
	test.DemandSuccess(t, m.AttachProgram(romloader.NewLoader(fn)))

	ld, ok := m.Program()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ld.ShortName(), "counter")

	test.DemandSuccess(t, m.RunForCycles(10, nil))
	test.ExpectEquality(t, m.Snapshot().V[0], uint8(5))

	// reset reloads the attached program
	m.Mem.Write(0x200, 0x00)
	test.DemandSuccess(t, m.Reset())
	test.ExpectEquality(t, m.Snapshot().V[0], uint8(0))
	test.ExpectEquality(t, m.Snapshot().Memory[0x200], uint8(0x70))
	test.ExpectEquality(t, m.Cycles(), uint64(0))
}

func TestAttachTooLarge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "large.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, memory.MaxProgramSize+2), 0o600))

	m := newMachine(t)
	err := m.AttachProgram(romloader.NewLoader(fn))
	test.ExpectSuccess(t, curated.Is(err, memory.LoadError))

	_, ok := m.Program()
	test.ExpectFailure(t, ok)
}

func TestRun(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x70, 0x01, 0x12, 0x00}))

	var n int
	err := m.Run(func() (govern.State, error) {
		n++
		if n >= 20 {
			return govern.Ending, nil
		}
		if n >= 10 {
			return govern.Paused, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// ten cycles executed. the remaining checks were paused
	test.ExpectEquality(t, m.Cycles(), uint64(10))
	test.ExpectEquality(t, m.Snapshot().V[0], uint8(5))
}

func TestRunForCyclesHalts(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Env.Prefs.FaultPolicy.Set("HALT"))
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x70, 0x01, 0xff, 0xff}))

	var checks int
	err := m.RunForCycles(100, func(cycle int) (govern.State, error) {
		checks = cycle
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Cycles(), uint64(2))
	test.ExpectEquality(t, checks, 1)
}

func TestString(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadProgram([]uint8{0x60, 0xaa}))
	_, _ = m.Step()

	s := m.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "PC=0x202 I=0x000 SP=0 []\nV0=0xaa"))
	test.ExpectSuccess(t, strings.Contains(s, "DT=0x00 ST=0x00\n"))
	test.ExpectSuccess(t, strings.Contains(s, "last: 0x200 60AA LD\n"))
}
