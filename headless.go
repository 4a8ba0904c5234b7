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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/romloader"
)

func headless(md *modalflag.Modes) error {
	md.NewMode()

	cycles := md.AddInt("cycles", 1000, "number of cycles to run")
	keys := md.AddString("keys", "", "keys to hold down, as hex digits (eg. 4A)")
	mv := md.AddString("memviz", "", "write a memviz graph of the final state to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "preference overrides for this session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	ld, err := programLoader(md)
	if err != nil {
		return err
	}

	popPrefs := pushPrefs(*prefsOverride)
	hwPrefs, err := preferences.NewPreferences()
	popPrefs()
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, hwPrefs)
	if err != nil {
		return err
	}

	return runHeadless(md.Output, env, ld, *cycles, *keys, *mv)
}

// parseKeys converts a string of hex digits to a keypad state.
func parseKeys(keys string) ([keypad.NumKeys]bool, error) {
	var state [keypad.NumKeys]bool
	for _, c := range strings.TrimSpace(keys) {
		k, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil {
			return state, curated.Errorf(badKey, c)
		}
		state[k] = true
	}
	return state, nil
}

// runHeadless runs the program for the number of cycles and writes the
// framebuffer and machine state to output.
func runHeadless(output io.Writer, env *environment.Environment, ld romloader.Loader, cycles int, keys string, memvizFile string) error {
	state, err := parseKeys(keys)
	if err != nil {
		return err
	}

	m := hardware.NewMachine(env)
	if err := m.AttachProgram(ld); err != nil {
		return err
	}
	m.SetKeypad(state)

	if err := m.RunForCycles(cycles, nil); err != nil {
		return err
	}

	io.WriteString(output, m.FramebufferSnapshot().String())
	io.WriteString(output, m.String())
	if m.CPU.Halted() {
		fmt.Fprintf(output, "machine halted: %s\n", m.CPU.LastResult.Error)
	}

	if memvizFile != "" {
		f, err := os.Create(memvizFile)
		if err != nil {
			return err
		}
		snapshot := m.Snapshot()
		memviz.Map(f, &snapshot)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
