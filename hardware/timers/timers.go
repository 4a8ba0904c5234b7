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

// Package timers implements the delay and sound countdown timers.
//
// Both timers are decremented once per machine cycle, after the instruction
// has executed, and stop at zero. The sound timer produces a one-shot edge on
// the cycle that it changes from one to zero. The edge is the signal for the
// audio collaborator to sound the tone.
package timers

import "fmt"

// Timers contains the two countdown timers.
type Timers struct {
	delay uint8
	sound uint8

	// the sound timer reached zero on the most recent tick
	edge bool
}

// NewTimers is the preferred method of initialisation for Timers.
func NewTimers() *Timers {
	return &Timers{}
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	*tmr = Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Delay returns the value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// Sound returns the value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetDelay sets the value of the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.delay = v
}

// SetSound sets the value of the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.sound = v
}

// Tick decrements both timers if they are not already zero. Returns true if
// the sound timer changed from one to zero.
func (tmr *Timers) Tick() bool {
	if tmr.delay > 0 {
		tmr.delay--
	}

	tmr.edge = false
	if tmr.sound > 0 {
		tmr.sound--
		tmr.edge = tmr.sound == 0
	}

	return tmr.edge
}

// SoundEdge returns true if the sound timer changed from one to zero on the
// most recent call to Tick().
func (tmr *Timers) SoundEdge() bool {
	return tmr.edge
}
