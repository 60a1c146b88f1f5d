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

package logger

import "sync/atomic"

// Permission implementations decide whether a log entry should be made.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = allow{}

// Switch is a Permission that can be changed at runtime. The zero value
// does not allow logging.
type Switch struct {
	on atomic.Bool
}

// AllowLogging implements the Permission interface.
func (s *Switch) AllowLogging() bool {
	return s.on.Load()
}

// Set the state of the switch.
func (s *Switch) Set(on bool) {
	s.on.Store(on)
}
