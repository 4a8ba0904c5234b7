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

package userinput

// HandleInput conceptualises data being sent to the emulated keypad.
type HandleInput interface {
	SetKey(key uint8, down bool)
}

// Request is returned by HandleUserInput() when the event asks for something
// other than keypad input.
type Request int

// List of valid Request values.
const (
	ReqNone Request = iota
	ReqQuit
	ReqReset
	ReqPause
	ReqFaster
	ReqSlower
)

func (r Request) String() string {
	switch r {
	case ReqNone:
		return "none"
	case ReqQuit:
		return "quit"
	case ReqReset:
		return "reset"
	case ReqPause:
		return "pause"
	case ReqFaster:
		return "faster"
	case ReqSlower:
		return "slower"
	}
	panic("unknown userinput request")
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulated keypad
	LastKeyHandled bool
}

// HandleUserInput forwards keypad events to the HandleInput implementation.
// Events that control the emulation are returned as a Request.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) Request {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		return ReqQuit
	case EventKeyboard:
		return c.keyboard(ev, handle)
	}

	return ReqNone
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) Request {
	if k, ok := KeypadKey(ev.Key); ok {
		if !ev.Repeat {
			handle.SetKey(k, ev.Down)
		}
		c.LastKeyHandled = true
		return ReqNone
	}

	if !ev.Down || ev.Repeat || ev.Mod != KeyModNone {
		return ReqNone
	}

	switch ev.Key {
	case "Escape":
		return ReqQuit
	case "Return":
		return ReqReset
	case "P":
		return ReqPause
	case "Right":
		return ReqFaster
	case "Left":
		return ReqSlower
	}

	return ReqNone
}
