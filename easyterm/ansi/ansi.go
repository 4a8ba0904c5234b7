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

// Package ansi defines ANSI control codes for cursor movement and screen
// clearing.
package ansi

import "fmt"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHome is the CSI sequence to move the cursor to the top left of the
// screen.
const CursorHome = "\033[H"

// CursorHide is the CSI sequence to make the cursor invisible.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to make the cursor visible.
const CursorShow = "\033[?25h"

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// InversePen is the CSI sequence for text with the pen and paper colours
// swapped.
const InversePen = "\033[7m"

// Bell is the ASCII bell character.
const Bell = "\a"

// CursorPosition is the CSI sequence to move the cursor to the row and
// column. Rows and columns count from one.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
