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

// Package keypad implements the sixteen key hexadecimal keypad.
//
// The keypad is the only part of the machine that is written to by a
// goroutine other than the emulation goroutine. The key state is replaced
// wholesale by the input collaborator and the emulation takes a copy of the
// entire key state once at the beginning of every cycle. No cycle will ever
// see a partial update.
package keypad

import (
	"strings"
	"sync"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// State of every key on the keypad. A value of true means the key is down.
type State [NumKeys]bool

func (s State) String() string {
	b := strings.Builder{}
	for k, down := range s {
		if down {
			b.WriteByte("0123456789ABCDEF"[k])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// FirstDown returns the lowest numbered key that is down. Returns false if
// no key is down.
func (s State) FirstDown() (uint8, bool) {
	for k, down := range s {
		if down {
			return uint8(k), true
		}
	}
	return 0, false
}

// Keypad is the synchronised key state.
type Keypad struct {
	crit  sync.Mutex
	state State
}

// NewKeypad is the preferred method of initialisation for Keypad.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.Set(State{})
}

// Set replaces the state of every key.
func (kp *Keypad) Set(state State) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.state = state
}

// SetKey changes the state of a single key. The key is masked to four bits.
func (kp *Keypad) SetKey(key uint8, down bool) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.state[key&0x0f] = down
}

// Snapshot returns a copy of the current key state.
func (kp *Keypad) Snapshot() State {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.state
}
