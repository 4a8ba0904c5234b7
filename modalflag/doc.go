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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to an
// instance of Modes:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 4, "pixel magnification")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first sub-mode added is the
// default mode, which is selected when the first remaining argument does not
// name one of the sub-modes. After parsing, the Mode() function returns the
// selected mode and NewMode() prepares the instance for the flags of that
// mode:
//
//	md.AddSubModes("RUN", "HEADLESS")
//	p, _ := md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// Mode names are case insensitive. The Path() function returns the series of
// modes selected by successive calls to Parse(), separated by a slash.
package modalflag
