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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestResultString(t *testing.T) {
	r := execution.Result{
		Address:     0x200,
		Instruction: instructions.Decode(0x1200),
		BranchTaken: true,
	}
	test.ExpectEquality(t, r.String(), "0x200 1200 JP [branch]")

	r = execution.Result{
		Address:     0x204,
		Instruction: instructions.Decode(0xf30a),
		Status:      execution.WaitingForKey,
	}
	test.ExpectEquality(t, r.String(), "0x204 F30A LD K [WaitingForKey]")

	r.Reset()
	test.ExpectEquality(t, r.Status, execution.Running)
	test.ExpectEquality(t, r.Address, uint16(0))
}
