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

package shell

import (
	"fmt"
	"strings"

	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/prefs"
)

// Sentinal error patterns.
const (
	NoPreferencesFile = "shell: preferences have no file"
	UnknownPreference = "shell: unknown preference (%s)"
)

// default values of the preferences
const (
	defaultWordSize = 2
	defaultBytes    = 0x80
)

// Preferences of the shell.
type Preferences struct {
	dsk *prefs.Disk

	// used by MD when there is no previous word size or byte count
	WordSize prefs.Int
	Bytes    prefs.Int

	// log fault barrier activity
	BarrierDebug prefs.Bool
}

func (p *Preferences) String() string {
	var s strings.Builder
	for _, e := range p.entries() {
		s.WriteString(fmt.Sprintf("%-16s %s\n", e.key, e.pref.String()))
	}
	return s.String()
}

type entry struct {
	key  string
	pref interface {
		fmt.Stringer
		Set(prefs.Value) error
		Get() prefs.Value
	}
}

func (p *Preferences) entries() []entry {
	return []entry{
		{key: "barrier.debug", pref: &p.BarrierDebug},
		{key: "shell.bytes", pref: &p.Bytes},
		{key: "shell.wordsize", pref: &p.WordSize},
	}
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the preferences cannot be saved or
// loaded.
func newPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.BarrierDebug.SetHookPost(func(v prefs.Value) error {
		barrier.Debug.Set(v.(bool))
		return nil
	})

	if path == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range p.entries() {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return p, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.WordSize.Set(defaultWordSize)
	_ = p.Bytes.Set(defaultBytes)
	_ = p.BarrierDebug.Set(false)
}

// Set the preference with the key.
func (p *Preferences) Set(key string, value string) error {
	for _, e := range p.entries() {
		if strings.EqualFold(e.key, key) {
			return e.pref.Set(value)
		}
	}
	return curated.Errorf(UnknownPreference, key)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoPreferencesFile)
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoPreferencesFile)
	}
	return p.dsk.Save()
}
