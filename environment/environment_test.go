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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestEnvironment(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("comparison", prefs)
	test.DemandSuccess(t, err)

	test.ExpectImplements[logger.Permission](t, main)
	test.ExpectSuccess(t, main.AllowLogging())
	test.ExpectFailure(t, other.AllowLogging())
	test.ExpectSuccess(t, other.IsEmulation("comparison"))

	// both environments share the same seed and so produce the same numbers
	for i := 0; i < 16; i++ {
		test.ExpectEquality(t, main.Random.Byte(), other.Random.Byte())
	}

	test.ExpectSuccess(t, prefs.FaultPolicy.Set("HALT"))
	main.Normalise()
	test.ExpectEquality(t, prefs.FaultPolicy.String(), "SKIP")
}
