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

// Package playmode runs the emulation in real time, presenting the
// framebuffer through a GUI and sounding the beep through any number of audio
// mixers.
//
// The emulation is paced by the limiter package. The rate is the
// CyclesPerSecond value of the hardware preferences and can be changed while
// the emulation is running (see the userinput package for the keys).
package playmode
