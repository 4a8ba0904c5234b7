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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/youpy/go-wav"
)

// WavWriter implements the gui.AudioMixer interface.
type WavWriter struct {
	filename string
	tone     tone.Tone

	// the time of the first sample in the buffer
	start time.Time

	buffer []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, t tone.Tone) (*WavWriter, error) {
	if t.SampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "tone has no sample rate")
	}

	aw := &WavWriter{
		filename: filename,
		tone:     t,
		start:    time.Now(),
		buffer:   make([]wav.Sample, 0),
	}

	return aw, nil
}

// Beep implements the gui.AudioMixer interface. The tone is placed in the
// recording at the current time, or immediately after the previous tone if
// that has not yet finished.
func (aw *WavWriter) Beep() error {
	pos := int(time.Since(aw.start) * time.Duration(aw.tone.SampleRate) / time.Second)

	// silence since the end of the previous tone
	for len(aw.buffer) < pos {
		aw.buffer = append(aw.buffer, wav.Sample{})
	}

	for _, v := range aw.tone.Data {
		w := wav.Sample{}
		w.Values[0] = int(v)
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// NumSamples returns the number of samples that will be written by
// EndMixing().
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing implements the gui.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.tone.SampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards everything recorded so far.
func (aw *WavWriter) Reset() {
	aw.start = time.Now()
	aw.buffer = aw.buffer[:0]
}
