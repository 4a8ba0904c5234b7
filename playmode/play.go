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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
)

// SpeedStep is the amount by which the emulation speed changes with each
// ReqFaster or ReqSlower request.
const SpeedStep = 50

const logTag = "playmode"

type playmode struct {
	env *environment.Environment
	m   *hardware.Machine

	scr      gui.GUI
	renderer gui.PixelRenderer
	mixers   []gui.AudioMixer

	lim   *limiter.Limiter
	batch int

	controllers userinput.Controllers
	userinput   chan userinput.Event
	intChan     chan os.Signal

	state govern.State

	// whether the halted state of the machine has been logged
	haltLogged bool
}

// Play sets the emulation running - without any debugging features.
//
// The renderer is usually the same instance as the GUI but that is not
// required. Play() returns when the user requests that the emulation end.
func Play(env *environment.Environment, scr gui.GUI, renderer gui.PixelRenderer, ld romloader.Loader, mixers ...gui.AudioMixer) error {
	pl := &playmode{
		env:       env,
		m:         hardware.NewMachine(env),
		scr:       scr,
		renderer:  renderer,
		mixers:    mixers,
		userinput: make(chan userinput.Event, 32),
		state:     govern.Initialising,
	}

	err := pl.m.AttachProgram(ld)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl.lim, err = limiter.NewLimiter(env.Prefs.CyclesPerSecond.Get().(int))
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer pl.lim.Stop()

	// connect gui
	err = scr.SetFeature(gui.ReqSetEventChan, pl.userinput)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetTitle, ld.ShortName())
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// we need to make sure we call the EndMixing() functions even when ctrl-c
	// is pressed. redirect interrupt signal to an os.Signal channel
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	pl.setState(govern.Running)

	err = pl.m.Run(pl.continueCheck)

	for _, mx := range pl.mixers {
		if mixErr := mx.EndMixing(); mixErr != nil && err == nil {
			err = mixErr
		}
	}

	pl.setState(govern.Ending)

	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// continueCheck is called by the machine after every cycle.
func (pl *playmode) continueCheck() (govern.State, error) {
	if pl.state == govern.Running {
		if pl.m.SoundEdge() {
			for _, mx := range pl.mixers {
				if err := mx.Beep(); err != nil {
					return govern.Ending, err
				}
			}
		}

		pl.batch--
		if pl.batch > 0 {
			return govern.Running, nil
		}
	}

	// end of batch. present the framebuffer and handle user input before
	// waiting for the limiter

	if pl.m.ConsumeRedraw() {
		err := pl.renderer.NewFrame(pl.m.FramebufferSnapshot())
		if err != nil {
			return govern.Ending, err
		}
	}

	if pl.m.CPU.Halted() && !pl.haltLogged {
		logger.Logf(pl.env, logTag, "machine halted: %s", pl.m.CPU.LastResult.Error)
		pl.haltLogged = true
	}

	err := pl.eventHandler()
	if err != nil {
		return govern.Ending, err
	}

	if pl.state == govern.Ending {
		return govern.Ending, nil
	}

	pl.lim.Wait()
	pl.batch = pl.lim.Batch()

	return pl.state, nil
}

func (pl *playmode) setState(state govern.State) {
	pl.state = state
	err := pl.scr.SetFeature(gui.ReqState, state)
	if err != nil {
		logger.Log(pl.env, logTag, err)
	}
}
