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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/tone"
	"github.com/jetsetilly/gopher8/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "session.wav")
	tn := tone.Square(8000, 1000, 10*time.Millisecond, 100)

	aw, err := wavwriter.New(fn, tn)
	test.DemandSuccess(t, err)
	test.ExpectImplements[gui.AudioMixer](t, aw)

	test.ExpectSuccess(t, aw.Beep())
	test.ExpectSuccess(t, aw.Beep())

	// two beeps never overlap
	test.ExpectEquality(t, aw.NumSamples() >= 2*len(tn.Data), true)
	n := aw.NumSamples()

	test.ExpectSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, dec.SampleRate, uint32(8000))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), n)

	// the final tone is at the end of the recording
	tail := buf.Data[n-len(tn.Data):]
	for i, v := range tn.Data {
		test.ExpectEquality(t, tail[i], int(v))
	}
}

func TestReset(t *testing.T) {
	tn := tone.Square(8000, 1000, 10*time.Millisecond, 100)

	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "session.wav"), tn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.Beep())
	aw.Reset()
	test.ExpectEquality(t, aw.NumSamples(), 0)
}

func TestNoSampleRate(t *testing.T) {
	_, err := wavwriter.New(filepath.Join(t.TempDir(), "session.wav"), tone.Tone{})
	test.ExpectFailure(t, err)
}
