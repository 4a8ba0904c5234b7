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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values. Unlike fmt.Errorf() the pattern
// is remembered and can later be used to identify the error:
//
//	e := curated.Errorf(memory.LoadError, len(data), memory.MaxProgramSize)
//
//	if curated.Is(e, memory.LoadError) {
//		fmt.Println("program too large")
//	}
//
// The Has() function checks whether the pattern occurs anywhere in the chain
// of wrapped errors. An error is wrapped by passing it as a placeholder value:
//
//	f := curated.Errorf("gopher8: %v", e)
//
//	curated.Is(f, memory.LoadError)  // false
//	curated.Has(f, memory.LoadError) // true
//
// Patterns used for this purpose should be exported as constant strings from
// the package that raises the error. This is how the hardware packages
// communicate recoverable faults (unknown opcodes, stack faults) to the caller
// of Machine.Step().
//
// The Error() function normalises the message by removing adjacent duplicate
// parts of the chain. Parts are separated by the sub-string ": ". So an error
// created like this:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: stack overflow"))
//
// will print as "cpu: stack overflow" and not "cpu: cpu: stack overflow".
//
// IsAny() answers whether the error was created by this package at all. In
// practice it's a way of distinguishing expected errors from unexpected ones.
//
// Curated errors also implement Unwrap(), returning the first placeholder
// value that is itself an error. This means that errors.Is() and errors.As()
// from the standard library continue to work on wrapped errors of any type.
package curated
