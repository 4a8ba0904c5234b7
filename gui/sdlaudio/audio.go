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

// Package sdlaudio plays the machine's beep through an SDL audio device.
//
// The SDL audio subsystem must have been initialised before calling
// NewAudio(). The sdlplay package does this.
package sdlaudio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/tone"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length is the number of samples SDL asks for at once. the value
// is not critical.
const bufferLength = 512

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the tone in the format expected by the audio device
	data []uint8
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio(t tone.Tone) (*Audio, error) {
	aud := &Audio{
		data: t.Bytes(),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(t.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	// zero for the allowedChanges argument means that SDL will convert to the
	// format of the real device if required
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Beep implements the gui.AudioMixer interface.
func (aud *Audio) Beep() error {
	// a beep that is still playing is not extended. this prevents a backlog
	// of beeps building up when the emulation is running quickly
	if sdl.GetQueuedAudioSize(aud.id) > 0 {
		return nil
	}

	err := sdl.QueueAudio(aud.id, aud.data)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
