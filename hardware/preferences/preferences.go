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

package preferences

import (
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// FaultPolicy determines how the CPU recovers from an unknown opcode or a
// stack fault.
type FaultPolicy int

// List of valid FaultPolicy values.
const (
	// report the fault, treat the instruction as a no-op and advance the
	// program counter to the next instruction
	FaultSkip FaultPolicy = iota

	// report the fault and stop the machine. the program counter is left on
	// the faulting instruction
	FaultHalt
)

func (f FaultPolicy) String() string {
	switch f {
	case FaultSkip:
		return "SKIP"
	case FaultHalt:
		return "HALT"
	}
	panic("unknown fault policy")
}

// SpriteEdge determines what happens to sprite pixels that fall outside the
// display.
type SpriteEdge int

// List of valid SpriteEdge values.
const (
	// pixels wrap around to the opposite edge of the display
	EdgeWrap SpriteEdge = iota

	// pixels outside the display are not drawn
	EdgeClip
)

func (e SpriteEdge) String() string {
	switch e {
	case EdgeWrap:
		return "WRAP"
	case EdgeClip:
		return "CLIP"
	}
	panic("unknown sprite edge")
}

// Default values for hardware preferences.
const (
	DefaultCyclesPerSecond = 1000
	DefaultFaultPolicy     = FaultSkip
	DefaultSpriteEdge      = EdgeWrap
	DefaultRandomSeed      = 0
)

// range of valid values for the CyclesPerSecond preference.
const (
	MinCyclesPerSecond = 1
	MaxCyclesPerSecond = 100000
)

// error patterns for invalid preference values.
const (
	BadFaultPolicy     = "preferences: unrecognised fault policy (%s)"
	BadSpriteEdge      = "preferences: unrecognised sprite edge (%s)"
	BadCyclesPerSecond = "preferences: cycles per second out of range (%d)"
)

// LivePreferences are updated automatically when the corresponding disk
// value is updated. Prefer these in performance critical code.
type LivePreferences struct {
	FaultPolicy atomic.Value // FaultPolicy
	SpriteEdge  atomic.Value // SpriteEdge
}

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values in performance critical code
	Live LivePreferences

	// the number of emulated cycles per second when running in real-time
	CyclesPerSecond prefs.Int

	// recovery from unknown opcodes and stack faults. SKIP or HALT
	FaultPolicy prefs.String

	// treatment of sprite pixels outside of the display. WRAP or CLIP
	SpriteEdge prefs.String

	// seed for the random number generator used by the CXNN instruction.
	// use random.TimeSeed for a different sequence every time
	RandomSeed prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() except that the values are
// loaded from the named file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.FaultPolicy.SetHookPre(func(v prefs.Value) error {
		_, err := parseFaultPolicy(v.(string))
		return err
	})
	p.FaultPolicy.SetHookPost(func(v prefs.Value) error {
		f, _ := parseFaultPolicy(v.(string))
		p.Live.FaultPolicy.Store(f)
		return nil
	})

	p.SpriteEdge.SetHookPre(func(v prefs.Value) error {
		_, err := parseSpriteEdge(v.(string))
		return err
	})
	p.SpriteEdge.SetHookPost(func(v prefs.Value) error {
		e, _ := parseSpriteEdge(v.(string))
		p.Live.SpriteEdge.Store(e)
		return nil
	})

	p.CyclesPerSecond.SetHookPre(func(v prefs.Value) error {
		if c := v.(int); c < MinCyclesPerSecond || c > MaxCyclesPerSecond {
			return curated.Errorf(BadCyclesPerSecond, c)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("chip8.cyclespersecond", &p.CyclesPerSecond); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("chip8.faultpolicy", &p.FaultPolicy); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("chip8.spriteedge", &p.SpriteEdge); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("chip8.randomseed", &p.RandomSeed); err != nil {
		return nil, err
	}
	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the default values are all valid so we can ignore the errors
	_ = p.CyclesPerSecond.Set(DefaultCyclesPerSecond)
	_ = p.FaultPolicy.Set(DefaultFaultPolicy.String())
	_ = p.SpriteEdge.Set(DefaultSpriteEdge.String())
	_ = p.RandomSeed.Set(DefaultRandomSeed)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

func parseFaultPolicy(s string) (FaultPolicy, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SKIP":
		return FaultSkip, nil
	case "HALT":
		return FaultHalt, nil
	}
	return FaultSkip, curated.Errorf(BadFaultPolicy, s)
}

func parseSpriteEdge(s string) (SpriteEdge, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "WRAP":
		return EdgeWrap, nil
	case "CLIP":
		return EdgeClip, nil
	}
	return EdgeWrap, curated.Errorf(BadSpriteEdge, s)
}
