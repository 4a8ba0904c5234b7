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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

func TestBlit(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectFailure(t, fb.Redraw())

	// a 2x2 block in the top left corner
	sprite := []uint8{0xc0, 0xc0}
	test.ExpectFailure(t, fb.Blit(0, 0, sprite, preferences.EdgeWrap))
	test.ExpectSuccess(t, fb.Pixel(0, 0))
	test.ExpectSuccess(t, fb.Pixel(1, 1))
	test.ExpectFailure(t, fb.Pixel(2, 0))
	test.ExpectEquality(t, fb.Snapshot().Count(), 4)

	test.ExpectSuccess(t, fb.ConsumeRedraw())
	test.ExpectFailure(t, fb.ConsumeRedraw())

	// overlapping draw collides and toggles the shared pixels off
	test.ExpectSuccess(t, fb.Blit(1, 1, sprite, preferences.EdgeWrap))
	test.ExpectFailure(t, fb.Pixel(1, 1))
	test.ExpectSuccess(t, fb.Pixel(2, 2))
	test.ExpectEquality(t, fb.Snapshot().Count(), 6)
}

func TestDrawTwice(t *testing.T) {
	fb := display.NewFramebuffer()
	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	fb.Blit(10, 10, sprite, preferences.EdgeWrap)
	before := fb.Snapshot()
	test.ExpectFailure(t, before.Blank())

	test.ExpectSuccess(t, fb.Blit(10, 10, sprite, preferences.EdgeWrap))
	test.ExpectSuccess(t, fb.Snapshot().Blank())
}

func TestWrap(t *testing.T) {
	fb := display.NewFramebuffer()

	// two pixels either side of the right edge and two rows either side of
	// the bottom edge
	fb.Blit(62, 31, []uint8{0xf0, 0xf0}, preferences.EdgeWrap)
	test.ExpectSuccess(t, fb.Pixel(62, 31))
	test.ExpectSuccess(t, fb.Pixel(63, 31))
	test.ExpectSuccess(t, fb.Pixel(0, 31))
	test.ExpectSuccess(t, fb.Pixel(1, 31))
	test.ExpectSuccess(t, fb.Pixel(62, 0))
	test.ExpectSuccess(t, fb.Pixel(1, 0))
	test.ExpectEquality(t, fb.Snapshot().Count(), 8)

	// coordinates beyond the display wrap too
	fb.Reset()
	fb.Blit(64+3, 32+4, []uint8{0x80}, preferences.EdgeWrap)
	test.ExpectSuccess(t, fb.Pixel(3, 4))
}

func TestClip(t *testing.T) {
	fb := display.NewFramebuffer()

	fb.Blit(62, 31, []uint8{0xf0, 0xf0}, preferences.EdgeClip)
	test.ExpectSuccess(t, fb.Pixel(62, 31))
	test.ExpectSuccess(t, fb.Pixel(63, 31))
	test.ExpectEquality(t, fb.Snapshot().Count(), 2)

	fb.Reset()
	fb.Blit(200, 200, []uint8{0xff}, preferences.EdgeClip)
	test.ExpectSuccess(t, fb.Snapshot().Blank())

	// redraw flag is set even though nothing was drawn
	test.ExpectSuccess(t, fb.Redraw())
}

func TestClear(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Blit(0, 0, []uint8{0xff, 0xff}, preferences.EdgeWrap)
	fb.ConsumeRedraw()

	fb.Clear()
	test.ExpectSuccess(t, fb.Snapshot().Blank())
	test.ExpectSuccess(t, fb.ConsumeRedraw())

	// clearing twice is the same as clearing once
	fb.Clear()
	test.ExpectSuccess(t, fb.Snapshot().Blank())
}

func TestSnapshotString(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Blit(0, 0, []uint8{0xa0}, preferences.EdgeWrap)

	rows := strings.Split(fb.Snapshot().String(), "\n")
	test.DemandEquality(t, len(rows), display.Height+1)
	test.ExpectEquality(t, rows[0], "#.#"+strings.Repeat(".", display.Width-3))
	test.ExpectEquality(t, rows[1], strings.Repeat(".", display.Width))
}
