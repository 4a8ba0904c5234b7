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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Status of the machine after the execution of an instruction.
type Status int

// List of valid Status values.
const (
	Running Status = iota
	WaitingForKey
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case WaitingForKey:
		return "WaitingForKey"
	case Halted:
		return "Halted"
	}
	return "unknown status"
}

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the decoded instruction
	Instruction instructions.Instruction

	Status Status

	// a fault encountered during execution. empty if there was no fault
	Error string

	// whether a branch or skip was taken
	BranchTaken bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := fmt.Sprintf("%#03x %s", r.Address, r.Instruction)
	if r.BranchTaken {
		s = fmt.Sprintf("%s [branch]", s)
	}
	if r.Status != Running {
		s = fmt.Sprintf("%s [%s]", s, r.Status)
	}
	if r.Error != "" {
		s = fmt.Sprintf("%s (%s)", s, r.Error)
	}
	return s
}
