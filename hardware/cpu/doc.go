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

// Package cpu emulates the CPU of the machine. The CPU fetches, decodes and
// executes one instruction for every call to ExecuteInstruction().
//
// The CPU does not own memory, the framebuffer or the timers. These are
// supplied through the Memory, Display and Timers interfaces when the CPU is
// created. The key state is passed to ExecuteInstruction() on every cycle.
//
// Instructions that write a result to a register and a flag to register 0xF
// compute the flag from the operands as they were before the instruction and
// write the flag last. If the destination register is 0xF then the flag
// overwrites the result.
//
// Faults (unknown opcodes, stack overflow and stack underflow) are returned
// as curated errors. They are not fatal and the CPU remains usable. How the
// CPU recovers from the fault depends on the FaultPolicy preference. See the
// preferences package for details.
package cpu
