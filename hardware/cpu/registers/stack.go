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

package registers

import (
	"fmt"
	"strings"
)

// StackDepth is the number of return addresses the stack can hold.
const StackDepth = 16

// Stack is the call stack. The pointer is the number of entries on the stack
// and is in the range 0 to StackDepth.
type Stack struct {
	entries [StackDepth]uint16
	ptr     int
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = [StackDepth]uint16{}
	s.ptr = 0
}

// Push address onto the stack. Returns false if the stack is full, in which
// case the stack is unchanged.
func (s *Stack) Push(address uint16) bool {
	if s.ptr >= StackDepth {
		return false
	}
	s.entries[s.ptr] = address
	s.ptr++
	return true
}

// Pop address from the stack. Returns false if the stack is empty, in which
// case the stack is unchanged.
func (s *Stack) Pop() (uint16, bool) {
	if s.ptr <= 0 {
		return 0, false
	}
	s.ptr--
	return s.entries[s.ptr], true
}

// Pointer returns the number of entries on the stack.
func (s Stack) Pointer() int {
	return s.ptr
}

// Entries returns the addresses currently on the stack, oldest first.
func (s Stack) Entries() []uint16 {
	e := make([]uint16, s.ptr)
	copy(e, s.entries[:s.ptr])
	return e
}

func (s Stack) String() string {
	if s.ptr == 0 {
		return "SP=0 []"
	}
	e := make([]string, s.ptr)
	for i := range e {
		e[i] = fmt.Sprintf("%#03x", s.entries[i])
	}
	return fmt.Sprintf("SP=%d [%s]", s.ptr, strings.Join(e, " "))
}
