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

package termplay

import (
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/easyterm"
	"github.com/jetsetilly/gopher8/easyterm/ansi"
	"github.com/jetsetilly/gopher8/userinput"
)

// names of the pseudo-keys for the interrupt and suspend characters.
const (
	keyInterrupt = "Interrupt"
	keySuspend   = "Suspend"
)

// parseInput converts the bytes read from the terminal into SDL style key
// names.
func parseInput(b []byte) []string {
	keys := make([]string, 0, len(b))

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyInterrupt:
			keys = append(keys, keyInterrupt)
		case easyterm.KeySuspend:
			keys = append(keys, keySuspend)
		case easyterm.KeyCarriageReturn, '\n':
			keys = append(keys, "Return")
		case easyterm.KeyEsc:
			if i+2 < len(b) && b[i+1] == easyterm.EscCursor {
				switch b[i+2] {
				case easyterm.CursorForward:
					keys = append(keys, "Right")
				case easyterm.CursorBackward:
					keys = append(keys, "Left")
				case easyterm.CursorUp:
					keys = append(keys, "Up")
				case easyterm.CursorDown:
					keys = append(keys, "Down")
				}
				i += 2
			} else {
				keys = append(keys, "Escape")
			}
		default:
			if b[i] > ' ' && b[i] < 127 {
				keys = append(keys, strings.ToUpper(string(b[i])))
			}
		}
	}

	return keys
}

// readInput runs as a goroutine for the lifetime of the program.
func (trm *TermPlay) readInput(input *os.File) {
	b := make([]byte, 16)
	for {
		n, err := input.Read(b)
		if err != nil {
			return
		}
		for _, k := range parseInput(b[:n]) {
			trm.press(k)
		}
	}
}

// press sends a key down event and schedules the key up event. keys that do
// not map to the keypad are released immediately.
func (trm *TermPlay) press(key string) {
	switch key {
	case keyInterrupt:
		trm.sendEvent(userinput.EventQuit{})
		return
	case keySuspend:
		trm.suspend()
		return
	}

	trm.crit.Lock()
	defer trm.crit.Unlock()

	if t, ok := trm.held[key]; ok && t.Stop() {
		t.Reset(keyHold)
		trm.sendEventLocked(userinput.EventKeyboard{Key: key, Down: true, Repeat: true})
		return
	}

	trm.sendEventLocked(userinput.EventKeyboard{Key: key, Down: true})

	if _, ok := userinput.KeypadKey(key); !ok {
		trm.sendEventLocked(userinput.EventKeyboard{Key: key, Down: false})
		return
	}

	var t *time.Timer
	t = time.AfterFunc(keyHold, func() {
		trm.crit.Lock()
		defer trm.crit.Unlock()

		// the key has been pressed again since this timer was started
		if trm.held[key] != t {
			return
		}

		delete(trm.held, key)
		trm.sendEventLocked(userinput.EventKeyboard{Key: key, Down: false})
	})
	trm.held[key] = t
}

// suspend the process with the terminal in canonical mode. the terminal is
// put back into raw mode and redrawn when the process continues.
func (trm *TermPlay) suspend() {
	trm.CanonicalMode()
	easyterm.SuspendProcess()
	trm.RawMode()

	trm.crit.Lock()
	defer trm.crit.Unlock()
	if trm.visible {
		trm.Print("%s%s", ansi.ClearScreen, ansi.CursorHide)
	}
	trm.draw()
}

func (trm *TermPlay) sendEvent(ev userinput.Event) {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	trm.sendEventLocked(ev)
}

// events are dropped if the emulation is not keeping up.
func (trm *TermPlay) sendEventLocked(ev userinput.Event) {
	if trm.userinput == nil {
		return
	}
	select {
	case trm.userinput <- ev:
	default:
	}
}
