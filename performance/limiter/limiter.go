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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(1000)
//
// Operations can then be stalled with the Wait() function. The Batch()
// function says how many events should be processed after each Wait(). For
// example:
//
//	for {
//		lim.Wait()
//		for i := lim.Batch(); i > 0; i-- {
//			step()
//		}
//	}
//
// Very high rates cannot be achieved by sleeping between every event so the
// limiter ticks at no more than MaxTickRate times per second and the events
// are batched.
package limiter

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/curated"
)

// MaxTickRate is the maximum number of times per second that Wait() will
// unblock.
const MaxTickRate = 250

// BadRate is returned by NewLimiter() and SetLimit() for a rate of less than
// one event per second.
const BadRate = "limiter: bad rate (%d)"

// Limiter will trigger at a fixed rate.
type Limiter struct {
	crit sync.Mutex

	rate     int
	tickRate int

	// the remainder of the batch size is accumulated between calls to
	// Batch()
	accum int

	// duration between ticks in nanoseconds. read by the ticker goroutine
	period atomic.Int64

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	err := lim.SetLimit(rate)
	if err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		adjusted := time.Duration(lim.period.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			period := time.Duration(lim.period.Load())
			time.Sleep(adjusted)
			nt := time.Now()

			// take into account the lateness of the sleep. the adjustment
			// never makes the sleep negative
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > period {
				adjusted = period
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate int) error {
	if rate < 1 {
		return curated.Errorf(BadRate, rate)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.rate = rate
	lim.tickRate = rate
	if lim.tickRate > MaxTickRate {
		lim.tickRate = MaxTickRate
	}
	lim.accum = 0

	lim.period.Store(int64(time.Second) / int64(lim.tickRate))

	return nil
}

// Rate returns the current limit.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// Batch returns the number of events that should be processed for the most
// recent trigger. Over the course of one second the sum of the values returned
// by Batch() will equal the rate.
func (lim *Limiter) Batch() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.accum += lim.rate
	n := lim.accum / lim.tickRate
	lim.accum %= lim.tickRate
	return n
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the ticker. The Limiter must not be used after it has been stopped.
func (lim *Limiter) Stop() {
	close(lim.quit)
}
