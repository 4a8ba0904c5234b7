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

// Package sdlplay is a simple SDL implementation of the gui.GUI and
// gui.PixelRenderer interfaces.
//
// SDL requires that window creation and event handling occur on the main
// thread. NewSdlPlay(), Service() and Destroy() MUST only be called from the
// main thread. Other functions can be called from any goroutine.
package sdlplay

import (
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// the window title used when no program has been named.
const windowTitle = "Gopher8"

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	Prefs *Preferences

	// connects SDL event handling with the emulation
	userinput chan userinput.Event

	// the state of the emulation as notified by ReqState. shown in the
	// window title along with the program name
	state govern.State
	title string

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	// the most recent frame from the emulation. drawn by the next call to
	// Service()
	crit     sync.Mutex
	frame    display.Snapshot
	newFrame bool

	// functions to be run on the main thread
	service    chan func()
	serviceErr chan error
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread.
func NewSdlPlay(prefs *Preferences) (*SdlPlay, error) {
	scr := &SdlPlay{
		Prefs:      prefs,
		state:      govern.Initialising,
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
	}

	var err error

	if scr.Prefs == nil {
		scr.Prefs, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("sdlplay: %v", err)
		}
	}

	// sdlaudio requires the audio subsystem
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	// SDL window. window size is set by setScale()
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width, display.Height,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.setScale(int32(scr.Prefs.Scale.Get().(int)))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// note that we've elected not to show the window on startup. window is
	// instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.renderer.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := scr.window.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	sdl.Quit()
}

// NewFrame implements the gui.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(snapshot display.Snapshot) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.frame = snapshot
	scr.newFrame = true
	return nil
}

// draw the most recent frame. MUST only be called from the #mainthread.
func (scr *SdlPlay) draw(force bool) error {
	scr.crit.Lock()
	if !scr.newFrame && !force {
		scr.crit.Unlock()
		return nil
	}
	frame := scr.frame
	scr.newFrame = false
	scr.crit.Unlock()

	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.SetDrawColor(255, 255, 255, 255)
	if err != nil {
		return err
	}

	// the renderer is scaled so that each emulated pixel is one unit
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if frame.Pixel(x, y) {
				err = scr.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
				if err != nil {
					return err
				}
			}
		}
	}

	scr.renderer.Present()

	return nil
}

// MUST only be called from the #mainthread.
func (scr *SdlPlay) setScale(scale int32) error {
	scr.scale = scale
	scr.window.SetSize(display.Width*scale, display.Height*scale)

	// make sure everything drawn through the renderer is correctly scaled
	return scr.renderer.SetScale(float32(scale), float32(scale))
}

// MUST only be called from the #mainthread.
func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
