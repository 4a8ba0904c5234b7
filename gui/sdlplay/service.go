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
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of milliseconds Service() waits for an event.
const serviceTimeout = 2

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. waiting for the first
	// event means that the main thread loop does not spin
	ev := sdl.WaitEventTimeout(serviceTimeout)
	for ev != nil {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN, sdl.KEYUP:
				scr.sendEvent(userinput.EventKeyboard{
					Key:    sdl.GetKeyName(ev.Keysym.Sym),
					Down:   ev.Type == sdl.KEYDOWN,
					Repeat: ev.Repeat != 0,
					Mod:    mod,
				})
			}
		}

		ev = sdl.PollEvent()
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}

	_ = scr.draw(false)
}

// events are dropped if the emulation is not keeping up.
func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	if scr.userinput == nil {
		return
	}
	select {
	case scr.userinput <- ev:
	default:
	}
}
