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

// Package prefs facilitates the storage of preferential values in the
// Gopher8 system. It is a way of storing values between program executions
// while also making those values accessible to other parts of the system.
//
// Preference values are typed (Bool, Int, Float and String) and can be added
// to a Disk instance under a key. The Disk is then saved to a file as a list
// of key/value pairs, one per line:
//
//	chip8.faultpolicy :: SKIP
//	sdl.scale :: 4
//
// Entries in the file that are not in the Disk instance are preserved on
// save. This means that many Disk instances can share the same file.
//
// Each type can have a pre-hook and post-hook function assigned to it. The
// pre-hook is called before the value is stored and can be used to reject
// the value by returning an error. The post-hook is called after the value
// has been stored.
//
// Values can be overridden from the command line with the command line
// stack. See PushCommandLineStack() for details. Overridden values are
// applied when the Disk is loaded and are never saved back to the file
// unless they are explicitly set again.
package prefs
