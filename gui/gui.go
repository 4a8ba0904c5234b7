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

package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// PixelRenderer implementations present the framebuffer of the emulated
// machine.
type PixelRenderer interface {
	// NewFrame is called whenever the framebuffer has changed. The snapshot
	// is a copy and can be retained by the implementation.
	NewFrame(snapshot display.Snapshot) error
}

// AudioMixer implementations sound the beep of the emulated machine.
type AudioMixer interface {
	// Beep is called when the sound timer of the machine expires.
	Beep() error

	// EndMixing is called when the emulation ends.
	EndMixing() error
}

// UnsupportedGuiFeature is returned if GUI does no support requested feature.
const UnsupportedGuiFeature = "gui: unsupported feature (%v)"
