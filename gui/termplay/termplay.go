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

// Package termplay is an implementation of the gui.GUI, gui.PixelRenderer and
// gui.AudioMixer interfaces for ANSI terminals.
//
// The framebuffer is drawn with half-block characters so that two rows of
// pixels fit into one line of text. The beep is the terminal bell.
//
// Terminals do not report key releases. A key is considered to be released a
// short time after the most recent press (or repeat) of that key.
package termplay

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/easyterm"
	"github.com/jetsetilly/gopher8/easyterm/ansi"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/version"
)

// the amount of time after a key press that the key is released.
const keyHold = 200 * time.Millisecond

// TermPlay draws the emulation to a terminal.
type TermPlay struct {
	easyterm.Terminal

	crit sync.Mutex

	userinput chan userinput.Event
	state     govern.State
	title     string
	visible   bool

	// the most recent frame. redrawn when the title or state changes
	frame display.Snapshot

	// pending key releases, indexed by key name
	held map[string]*time.Timer
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is put into raw mode until Destroy() is called.
func NewTermPlay(input *os.File, output *os.File) (*TermPlay, error) {
	trm := &TermPlay{
		state: govern.Initialising,
		held:  make(map[string]*time.Timer),
	}

	err := trm.Initialise(input, output)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	g := trm.Geometry()
	if g.Cols > 0 && (g.Cols < display.Width || g.Rows < display.Height/2+1) {
		trm.CleanUp()
		return nil, curated.Errorf("termplay: terminal too small (%dx%d)", g.Cols, g.Rows)
	}

	trm.RawMode()

	go trm.readInput(input)

	return trm, nil
}

// Destroy implements the GuiCreator interface.
func (trm *TermPlay) Destroy(output io.Writer) {
	trm.crit.Lock()
	for _, t := range trm.held {
		t.Stop()
	}
	trm.crit.Unlock()

	trm.Print("%s%s%s", ansi.NormalPen, ansi.CursorShow, ansi.CursorPosition(display.Height/2+2, 1))
	trm.CleanUp()
}

// Service implements the GuiCreator interface. Terminal input is handled by a
// separate goroutine so there is nothing to do.
func (trm *TermPlay) Service() {
	time.Sleep(10 * time.Millisecond)
}

// SetFeature implements the gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("termplay: %v", fmt.Sprintf("%s: %v", request, r))
		}
	}()

	trm.crit.Lock()
	defer trm.crit.Unlock()

	switch request {
	case gui.ReqSetEventChan:
		trm.userinput = args[0].(chan userinput.Event)
		return nil
	case gui.ReqState:
		trm.state = args[0].(govern.State)
	case gui.ReqSetVisibility:
		trm.visible = args[0].(bool)
		if trm.visible {
			trm.Print("%s%s", ansi.ClearScreen, ansi.CursorHide)
		}
	case gui.ReqSetTitle:
		trm.title = args[0].(string)
	case gui.ReqSetScale:
		// scaling is not possible in a terminal
		return nil
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	trm.draw()

	return nil
}

// NewFrame implements the gui.PixelRenderer interface.
func (trm *TermPlay) NewFrame(snapshot display.Snapshot) error {
	trm.crit.Lock()
	defer trm.crit.Unlock()
	trm.frame = snapshot
	trm.draw()
	return nil
}

// Beep implements the gui.AudioMixer interface.
func (trm *TermPlay) Beep() error {
	trm.Print(ansi.Bell)
	return nil
}

// EndMixing implements the gui.AudioMixer interface.
func (trm *TermPlay) EndMixing() error {
	return nil
}

// draw must be called with the critical section locked.
func (trm *TermPlay) draw() {
	if !trm.visible {
		return
	}
	trm.Print("%s%s", ansi.CursorHome, render(trm.frame, statusLine(trm.title, trm.state)))
}

func statusLine(title string, state govern.State) string {
	s := version.ApplicationName
	if title != "" {
		s = fmt.Sprintf("%s - %s", s, title)
	}
	if state == govern.Paused {
		s = fmt.Sprintf("%s (paused)", s)
	}
	return s
}

// render the snapshot as lines of half-block characters. lines are separated
// with CR LF because the terminal is in raw mode.
func render(snapshot display.Snapshot, status string) string {
	var s strings.Builder

	s.WriteString(ansi.ClearLine)
	s.WriteString(status)
	s.WriteString("\r\n")

	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := snapshot.Pixel(x, y)
			bot := snapshot.Pixel(x, y+1)
			switch {
			case top && bot:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bot:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteString("\r\n")
	}

	return s.String()
}
