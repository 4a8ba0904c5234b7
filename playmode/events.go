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

package playmode

import (
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// eventHandler services all pending user input.
func (pl *playmode) eventHandler() error {
	for {
		select {
		case <-pl.intChan:
			pl.state = govern.Ending
			return nil

		case ev := <-pl.userinput:
			err := pl.userInputHandler(ev)
			if err != nil {
				return err
			}
			if pl.state == govern.Ending {
				return nil
			}

		default:
			return nil
		}
	}
}

func (pl *playmode) userInputHandler(ev userinput.Event) error {
	switch pl.controllers.HandleUserInput(ev, pl.m.Keypad) {
	case userinput.ReqQuit:
		pl.state = govern.Ending

	case userinput.ReqReset:
		pl.haltLogged = false
		pl.batch = 0
		err := pl.m.Reset()
		if err != nil {
			return err
		}

		// the framebuffer is blank after a reset but the redraw flag is not
		// set
		err = pl.renderer.NewFrame(pl.m.FramebufferSnapshot())
		if err != nil {
			return err
		}
		logger.Log(pl.env, logTag, "machine reset")

	case userinput.ReqPause:
		if pl.state == govern.Paused {
			pl.setState(govern.Running)
		} else {
			pl.setState(govern.Paused)
		}

	case userinput.ReqFaster:
		pl.setSpeed(pl.lim.Rate() + SpeedStep)

	case userinput.ReqSlower:
		pl.setSpeed(pl.lim.Rate() - SpeedStep)
	}

	return nil
}

// the new speed is clamped to the range of valid values.
func (pl *playmode) setSpeed(rate int) {
	if rate < preferences.MinCyclesPerSecond {
		rate = preferences.MinCyclesPerSecond
	} else if rate > preferences.MaxCyclesPerSecond {
		rate = preferences.MaxCyclesPerSecond
	}

	// the values are in range so there will be no errors
	_ = pl.env.Prefs.CyclesPerSecond.Set(rate)
	_ = pl.lim.SetLimit(rate)

	logger.Logf(pl.env, logTag, "emulation speed set to %d cycles per second", rate)
}
