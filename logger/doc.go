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

// Package logger is the central log for the emulator. Log entries are made up
// of a tag and a detail. The tag names the part of the emulation making the
// entry (eg. "cpu" or "romloader") and the detail is the message:
//
//	logger.Log(env, "cpu", err)
//	logger.Logf(logger.Allow, "playmode", "speed set to %d cycles per second", speed)
//
// The first argument is a Permission. The Environment type in the environment
// package implements the Permission interface, allowing an emulation to
// decide whether its log entries should be recorded. The Allow value can be
// used when there is no such concern.
//
// Consecutive entries with identical tag and detail are folded into a single
// entry with a repeat count. Only the most recent entries are kept.
//
// Log entries are not printed unless SetEcho() has been called with a non-nil
// io.Writer. The Write() and Tail() functions can be used to print the log at
// any point.
package logger
