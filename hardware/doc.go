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

// Package hardware is the base package for the emulated machine. The Machine
// type is the single owner of all machine state: memory, CPU, timers,
// framebuffer and keypad.
//
// The Machine is driven by calling Step() from a single goroutine. Each call
// executes exactly one instruction followed by one tick of the timers. The
// Run() and RunForCycles() functions are convenient loops around Step().
//
// The keypad is the only state that can be changed from another goroutine,
// with SetKeypad(). The state of the keypad is sampled once at the beginning
// of every cycle.
//
// Presentation and audio are not part of the machine. The framebuffer is
// made available with FramebufferSnapshot() and ConsumeRedraw(). The sound
// signal is made available with SoundEdge().
package hardware
