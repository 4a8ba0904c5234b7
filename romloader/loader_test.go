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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []byte{0x12, 0x00}

// sha1 of program
const programHash = "92a5652d382a18e89c4881ec57041fc7d885ca80"

func TestShortName(t *testing.T) {
	ld := romloader.NewLoader("roms/Space Invaders.ch8")
	test.ExpectEquality(t, ld.ShortName(), "Space Invaders")

	ld = romloader.NewLoader("https://example.com/roms/pong.c8")
	test.ExpectEquality(t, ld.ShortName(), "pong")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "loop.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, ld.Hash, programHash)

	// loading with the correct hash succeeds
	ld2 := romloader.NewLoader(fn)
	ld2.Hash = ld.Hash
	test.ExpectSuccess(t, ld2.Load())

	// loading with the wrong hash fails
	ld3 := romloader.NewLoader(fn)
	ld3.Hash = "0000"
	err := ld3.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, ld3.HasLoaded())
}

func TestLoadMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loop.ch8" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/loop.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Has(err, romloader.HTTPStatus))
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/pong.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnsupportedScheme))
}
