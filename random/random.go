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

package random

import (
	"math/rand"
	"time"
)

// TimeSeed indicates that the generator should be seeded with the current
// time rather than a fixed value.
const TimeSeed = -1

// Random is a random number generator for the emulation.
type Random struct {
	seed int64
	rnd  *rand.Rand

	// the seed actually used by the generator. differs from seed only when
	// seed is TimeSeed
	effective int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(seed int64) *Random {
	rnd := &Random{}
	rnd.Reseed(seed)
	return rnd
}

// Reseed changes the seed value and restarts the sequence.
func (rnd *Random) Reseed(seed int64) {
	rnd.seed = seed
	rnd.Reset()
}

// Reset restarts the sequence of random numbers from the beginning.
func (rnd *Random) Reset() {
	if rnd.seed == TimeSeed {
		rnd.effective = time.Now().UnixNano()
	} else {
		rnd.effective = rnd.seed
	}
	rnd.rnd = rand.New(rand.NewSource(rnd.effective))
}

// Seed returns the seed value in use by the generator.
func (rnd *Random) Seed() int64 {
	return rnd.effective
}

// Byte returns a random number in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rnd.Intn(256))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.Intn(n)
}
