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

// Package version reports the version of the program. The values are set at
// link time by the makefile:
//
//	go build -ldflags "-X github.com/memdisplay/memdisplay/version.version=v1.0.0 \
//		-X github.com/memdisplay/memdisplay/version.commit=$(git rev-parse HEAD) \
//		-X github.com/memdisplay/memdisplay/version.date=$(date -u +%FT%TZ)"
//
// If the values are not set at link time the vcs information recorded by the
// go tool is used instead.
package version

import (
	"runtime/debug"

	"github.com/retroenv/retrogolib/buildinfo"
)

// The name to use when referring to the application
const ApplicationName = "memdisplay"

// set by the linker
var (
	version string
	commit  string
	date    string
)

// Version returns the version string.
func Version() string {
	v := buildinfo.Version(version, commit, date)
	if v == "" {
		return "unreleased"
	}
	return v
}

// Release is true if the version was set at link time.
func Release() bool {
	return version != ""
}

func init() {
	if commit != "" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			commit = v.Value
		case "vcs.time":
			if date == "" {
				date = v.Value
			}
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if commit != "" && modified {
		commit += "+dirty"
	}
}
