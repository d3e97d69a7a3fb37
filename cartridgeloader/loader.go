// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/jetsetilly/gopher2a03/curated"
	"github.com/jetsetilly/gopher2a03/logger"
)

// HTTPTimeout is the maximum time allowed for a cartridge to be fetched over
// HTTP.
const HTTPTimeout = 10 * time.Second

// Loader is used to specify the cartridge to use when attaching to the NES.
type Loader struct {
	// filename of cartridge to load. can be a URL with the http, https or
	// file scheme
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data. if the file was a zip archive then this is the data of the
	// cartridge inside the archive
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(cl.Filename), path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. Zip archives are opened and the first file with a recognised
// extension is used.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	data, err := fetch(cl.Filename)
	if err != nil {
		return curated.Errorf("cartridgeloader: %v", err)
	}

	if isZip(cl.Filename) {
		data, err = unzip(data)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
	} else if !hasExtension(cl.Filename) {
		logger.Logf(logger.Allow, "cartridgeloader", "%s: unrecognised file extension", cl.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Data = data
	cl.Hash = hash

	return nil
}

// Cartridge parses the loaded data. Load() must have been called
// successfully.
func (cl Loader) Cartridge() (*Cartridge, error) {
	if !cl.HasLoaded() {
		return nil, curated.Errorf("cartridgeloader: %v", "no data loaded")
	}
	return Parse(bytes.NewReader(cl.Data))
}

// fetch the raw data from the filename, according to the scheme of the URL
func fetch(filename string) ([]byte, error) {
	u, err := url.Parse(filename)
	if err != nil {
		return os.ReadFile(filename)
	}

	switch u.Scheme {
	case "http", "https":
		client := http.Client{Timeout: HTTPTimeout}
		resp, err := client.Get(filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected HTTP status (%s)", resp.Status)
		}
		return io.ReadAll(resp.Body)

	case "file":
		return os.ReadFile(u.Path)

	case "":
		return os.ReadFile(filename)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", u.Scheme)
}

// unzip returns the data of the first file in the archive with a recognised
// extension
func unzip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !hasExtension(f.Name) {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return io.ReadAll(r)
	}

	return nil, fmt.Errorf("no cartridge found in archive")
}

func isZip(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".zip")
}

func hasExtension(filename string) bool {
	return slices.Contains(FileExtensions[:], strings.ToUpper(path.Ext(filename)))
}
