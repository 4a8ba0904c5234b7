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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Undefined Category = iota
	Flow
	Arithmetic
	Memory
	Display
	Input
	Timer
)

func (c Category) String() string {
	switch c {
	case Undefined:
		return "Undefined"
	case Flow:
		return "Flow"
	case Arithmetic:
		return "Arithmetic"
	case Memory:
		return "Memory"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	}
	return "unknown category"
}
