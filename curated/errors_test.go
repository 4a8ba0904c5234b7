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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testPattern = "test error: %d"
const wrapPattern = "wrapper: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test error: 10")
	test.ExpectEquality(t, curated.Is(e, testPattern), true)
	test.ExpectEquality(t, curated.Is(e, wrapPattern), false)
	test.ExpectEquality(t, curated.IsAny(e), true)

	// plain errors are never curated
	test.ExpectEquality(t, curated.IsAny(io.EOF), false)
	test.ExpectEquality(t, curated.Is(io.EOF, testPattern), false)
	test.ExpectEquality(t, curated.IsAny(nil), false)
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, curated.Is(f, testPattern), false)
	test.ExpectEquality(t, curated.Has(f, testPattern), true)
	test.ExpectEquality(t, curated.Has(f, wrapPattern), true)
	test.ExpectEquality(t, curated.Has(f, "not present"), false)
	test.ExpectEquality(t, f.Error(), "wrapper: test error: 10")
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: stack overflow"))
	test.ExpectEquality(t, e.Error(), "cpu: stack overflow")

	// only adjacent duplicates are removed
	e = curated.Errorf("a: b: %v", curated.Errorf("a: c"))
	test.ExpectEquality(t, e.Error(), "a: b: a: c")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("romloader: %v", io.ErrUnexpectedEOF)
	test.ExpectEquality(t, errors.Is(e, io.ErrUnexpectedEOF), true)
	test.ExpectEquality(t, errors.Unwrap(e), io.ErrUnexpectedEOF)

	e = curated.Errorf("no values")
	test.ExpectEquality(t, errors.Unwrap(e), nil)
}
