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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Error patterns returned by Load().
const (
	LoadError         = "romloader: %v"
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
	HTTPStatus        = "romloader: http status (%s)"
)

// FileExtensions is the list of file extensions usually used for program
// images. The extension is not checked by Load().
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the program image to attach to the machine.
type Loader struct {
	// filename or URL of the program image
	Filename string

	// expected SHA1 hash of the image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename, suitable for
// use as a window title.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program image. Filenames with a valid scheme will use that method
// to load the data. Currently supported schemes are HTTP(S) and local files.
//
// Calling Load() on a Loader that has already loaded data does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(ld.Filename)
	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

func loadHTTP(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(HTTPStatus, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
