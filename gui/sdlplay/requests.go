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
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/userinput"
)

// SetFeature implements the gui.GUI interface.
//
// MUST NOT be called from the #mainthread.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.service <- func() {
		scr.serviceErr <- scr.serviceFeatureRequest(request, args)
	}
	return <-scr.serviceErr
}

// feature requests are run from the Service() function on the #mainthread.
func (scr *SdlPlay) serviceFeatureRequest(request gui.FeatureReq, args []gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("sdlplay: %v", fmt.Sprintf("%s: %v", request, r))
		}
	}()

	switch request {
	case gui.ReqSetEventChan:
		scr.userinput = args[0].(chan userinput.Event)

	case gui.ReqState:
		scr.state = args[0].(govern.State)
		scr.updateTitle()

	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))
		return scr.draw(true)

	case gui.ReqSetTitle:
		scr.title = args[0].(string)
		scr.updateTitle()

	case gui.ReqSetScale:
		s := args[0].(int)
		err = scr.Prefs.Scale.Set(s)
		if err != nil {
			return err
		}
		return scr.setScale(int32(s))

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// MUST only be called from the #mainthread.
func (scr *SdlPlay) updateTitle() {
	t := windowTitle
	if scr.title != "" {
		t = fmt.Sprintf("%s - %s", t, scr.title)
	}
	if scr.state == govern.Paused {
		t = fmt.Sprintf("%s (paused)", t)
	}
	scr.window.SetTitle(t)
}
