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

package hardware

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
)

// UnsupportedState is returned by the run loops when continueCheck() returns
// a state that the loop does not know how to handle.
const UnsupportedState = "machine: unsupported emulation state (%s)"

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called between every cycle and the loop ends when it returns
// the Ending state. A nil continueCheck() runs the machine forever.
//
// Faults are not returned by Run(). They are logged and are available in the
// LastResult field of the CPU. A halted machine continues to call
// continueCheck() so that it can be reset.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			_, _ = m.Step()
		case govern.Paused, govern.Initialising:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles sets the machine running for the specified number of cycles.
// The cycle argument to continueCheck() is the number of cycles executed so
// far. Unlike Run(), the loop also ends if the machine halts.
func (m *Machine) RunForCycles(numCycles int, continueCheck func(cycle int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(cycle int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for cycle := 0; cycle < numCycles && state != govern.Ending; {
		switch state {
		case govern.Running:
			_, _ = m.Step()
			cycle++
			if m.CPU.Halted() {
				return nil
			}
		case govern.Paused, govern.Initialising:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		var err error
		state, err = continueCheck(cycle)
		if err != nil {
			return err
		}
	}

	return nil
}
