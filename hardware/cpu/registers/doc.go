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

// Package registers implements the register types of the CPU: the sixteen
// general purpose 8 bit registers, the index register, the program counter
// and the call stack.
//
// Register 0xF is written by many instructions as a flag. The Register type
// does not write to the flag register itself. Instead, the arithmetic
// functions return the flag value and it is up to the caller to store it.
// This way the caller decides the order in which the result and the flag are
// written, which matters when the destination register is itself register
// 0xF.
package registers
