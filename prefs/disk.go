// This file is part of memdisplay.
//
// memdisplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// memdisplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with memdisplay.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
)

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	DiskError    = "prefs: %v"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand. it is written by memdisplay ***"

const separator = " :: "

// Disk is a group of preferences stored in a file.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	var s strings.Builder
	for _, k := range dsk.keys() {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference with a key. The preference must be a pointer to a Bool,
// Int or String.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read all entries in the file. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line should be the boilerplate
	if !scanner.Scan() {
		return entries, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("%s is not a preferences file", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Load preferences from the file. A missing file is not an error.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
		}
	}

	return nil
}

// Save preferences to the file. Entries already in the file for keys that
// have not been added to the Disk are kept.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	err = write(f, keys, entries)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

func write(w io.Writer, keys []string, entries map[string]string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(bw, "%s%s%s\n", k, separator, entries[k])
	}
	return bw.Flush()
}
