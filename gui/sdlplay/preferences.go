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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for SDL preferences.
const (
	DefaultScale = 4
	MinScale     = 1
	MaxScale     = 16
)

// Default values for SDL audio preferences.
const (
	DefaultAudio  = true
	DefaultVolume = 1.0
)

// Error patterns for out of range preferences.
const (
	BadScale  = "sdlplay: scale out of range (%d)"
	BadVolume = "sdlplay: volume out of range (%.3f)"
)

// Preferences for the SDL window and audio. The values share a file with the
// hardware preferences.
type Preferences struct {
	dsk *prefs.Disk

	// the size of each emulated pixel in real pixels
	Scale prefs.Int

	// the beep is not played if Audio is false
	Audio prefs.Bool

	// amplification of the beep, between zero and one
	Volume prefs.Float

	// path to a WAV or MP3 file played when the sound timer expires. the
	// empty string means that a square wave is played
	Beep prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
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

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < MinScale || s > MaxScale {
			return curated.Errorf(BadScale, s)
		}
		return nil
	})

	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf(BadVolume, f)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.scale", &p.Scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.audio", &p.Audio); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.volume", &p.Volume); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.beep", &p.Beep); err != nil {
		return nil, err
	}
	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all SDL preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(DefaultScale)
	_ = p.Audio.Set(DefaultAudio)
	_ = p.Volume.Set(DefaultVolume)
	_ = p.Beep.Set("")
}

// Load SDL preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current SDL preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
