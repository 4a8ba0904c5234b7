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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure but allow the test to
// continue. The Demand*() functions stop the test immediately with a fatal
// error. The Demand*() functions are useful when the values being tested are
// used in further tests and so must be correct.
//
// Success and failure are interpreted according to type. For bool, true is
// success; for error, nil is success. An untyped nil value is also considered
// a success. This may not be how we want to interpret nil in all situations
// but because of how errors usually work (nil to indicate no error) we need
// to interpret nil in this way.
//
// All functions take an optional list of tags. These are printed as part of
// the failure message to help identify which of several similar tests failed.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
