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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the amount of time the emulation runs for before measurement begins.
const leadTime = time.Second

// performanceBrake is the number of cycles between checks of the timer
// channel. checking the channel is relatively expensive.
const performanceBrake = 100

// Check the performance of the emulator using the supplied program.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
//
// If uncapped is false the emulation is limited to the cycles per second value
// in the preferences. The prefs argument can be nil, in which case the
// preferences are loaded from the default preferences file.
func Check(output io.Writer, prefs *preferences.Preferences, profile Profile, ld romloader.Loader, uncapped bool, duration string) error {
	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// create machine
	m := hardware.NewMachine(env)

	// attach program to the machine
	err = m.AttachProgram(ld)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	requested := env.Prefs.CyclesPerSecond.Get().(int)

	var lim *limiter.Limiter
	if !uncapped {
		lim, err = limiter.NewLimiter(requested)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer lim.Stop()
	}

	// get starting cycle number (should be 0)
	startCycle := m.Cycles()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// the lead time will put false on the timerChan. the conclusion of the
		// measurement period will put true on the timerChan.
		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0
		batch := 0

		// run until specified time elapses
		return m.Run(func() (govern.State, error) {
			if lim != nil {
				if batch <= 0 {
					lim.Wait()
					batch = lim.Batch()
				}
				batch--
			}

			brake++
			if brake >= performanceBrake {
				brake = 0

				select {
				case v := <-timerChan:
					// measurement period has finished
					if v {
						return govern.Ending, timedOut
					}

					// lead time has concluded and the measurement has begun
					startCycle = m.Cycles()
				default:
				}
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, paths.UniqueFilename("performance", ld.ShortName()), runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := m.Cycles() - startCycle
	rate, accuracy := CalcRate(numCycles, dur.Seconds(), requested)
	output.Write([]byte(fmt.Sprintf("%.2f cycles/s (%d cycles in %.2f seconds) %.1f%%\n", rate, numCycles, dur.Seconds(), accuracy)))

	if m.CPU.Halted() {
		output.Write([]byte(fmt.Sprintf("machine halted: %s\n", m.CPU.LastResult.Error)))
	}

	return nil
}
