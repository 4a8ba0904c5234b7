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

// Package tone provides the sample data played when the sound timer of the
// machine expires.
//
// A tone can be generated with Square() or loaded from a WAV or MP3 file with
// Load(). Sample data is always mono, signed 16 bit. Stereo source files are
// reduced to the left channel.
package tone

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Default values for a generated tone.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	DefaultDuration   = 100 * time.Millisecond
	DefaultVolume     = 8000
)

// Error patterns.
const (
	UnsupportedFormat = "tone: unsupported file format (%s)"
	DecodeError       = "tone: %s: %v"
)

const logTag = "tone"

// Tone is a mono, signed 16 bit sample.
type Tone struct {
	SampleRate int
	Data       []int16
}

// Duration of the tone.
func (t Tone) Duration() time.Duration {
	if t.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(t.Data)) * time.Second / time.Duration(t.SampleRate)
}

// Bytes returns the sample data as little endian bytes.
func (t Tone) Bytes() []uint8 {
	b := make([]uint8, len(t.Data)*2)
	for i, v := range t.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	return b
}

// Amplify returns a copy of the tone with every sample multiplied by v.
// Samples are clamped to the range of int16.
func (t Tone) Amplify(v float64) Tone {
	a := Tone{
		SampleRate: t.SampleRate,
		Data:       make([]int16, len(t.Data)),
	}
	for i, d := range t.Data {
		f := float64(d) * v
		switch {
		case f > math.MaxInt16:
			a.Data[i] = math.MaxInt16
		case f < math.MinInt16:
			a.Data[i] = math.MinInt16
		default:
			a.Data[i] = int16(f)
		}
	}
	return a
}

// Square generates a square wave tone.
func Square(sampleRate int, frequency int, duration time.Duration, volume int16) Tone {
	t := Tone{
		SampleRate: sampleRate,
	}

	n := int(int64(sampleRate) * int64(duration) / int64(time.Second))
	t.Data = make([]int16, n)

	if frequency <= 0 {
		return t
	}

	// number of samples in half a period
	half := sampleRate / (frequency * 2)
	if half < 1 {
		half = 1
	}

	for i := range t.Data {
		if (i/half)%2 == 0 {
			t.Data[i] = volume
		} else {
			t.Data[i] = -volume
		}
	}

	return t
}

// Default returns the tone to use when no file has been specified.
func Default() Tone {
	return Square(DefaultSampleRate, DefaultFrequency, DefaultDuration, DefaultVolume)
}

// Load a tone from the named file. The format of the file is decided by the
// file extension. WAV and MP3 files are supported.
func Load(perm logger.Permission, filename string) (Tone, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Tone{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	return Decode(perm, filename, bytes.NewReader(data))
}

// Decode the tone in the supplied data. The name argument is used to decide
// the format of the data.
func Decode(perm logger.Permission, name string, r io.ReadSeeker) (Tone, error) {
	var t Tone
	var err error

	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".wav":
		t, err = decodeWAV(r)
	case ".mp3":
		t, err = decodeMP3(r)
	default:
		return Tone{}, curated.Errorf(UnsupportedFormat, ext)
	}

	if err != nil {
		return Tone{}, curated.Errorf(DecodeError, strings.TrimPrefix(ext, "."), err)
	}

	logger.Logf(perm, logTag, "loaded %s: %dHz %.02fs", filepath.Base(name), t.SampleRate, t.Duration().Seconds())

	return t, nil
}

func decodeWAV(r io.ReadSeeker) (Tone, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return Tone{}, curated.Errorf("error decoding")
	}

	if !dec.IsValidFile() {
		return Tone{}, curated.Errorf("not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Tone{}, err
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}

	t := Tone{
		SampleRate: int(dec.SampleRate),
		Data:       make([]int16, 0, len(buf.Data)/numChans),
	}

	// copy first channel only of data stream
	for i := 0; i < len(buf.Data); i += numChans {
		t.Data = append(t.Data, scale(buf.Data[i], int(dec.BitDepth)))
	}

	return t, nil
}

// scale a sample of the given bit depth to signed 16 bit. eight bit WAV
// samples are unsigned.
func scale(v int, bitDepth int) int16 {
	switch bitDepth {
	case 8:
		return int16((v - 128) << 8)
	case 24:
		return int16(v >> 8)
	case 32:
		return int16(v >> 16)
	}
	return int16(v)
}

func decodeMP3(r io.Reader) (Tone, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Tone{}, err
	}

	// "The stream is always formatted as 16bit (little endian) 2 channels even
	// if the source is single channel MP3. Thus, a sample always consists of 4
	// bytes."
	data, err := io.ReadAll(dec)
	if err != nil {
		return Tone{}, err
	}

	t := Tone{
		SampleRate: dec.SampleRate(),
		Data:       make([]int16, 0, len(data)/4),
	}

	// left channel only
	for i := 0; i+1 < len(data); i += 4 {
		t.Data = append(t.Data, int16(binary.LittleEndian.Uint16(data[i:])))
	}

	return t, nil
}
