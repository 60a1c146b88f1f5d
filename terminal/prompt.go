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

package terminal

import (
	"strings"
)

// Prompt specifies the prompt text.
type Prompt struct {
	// the address at the session cursor. empty if there is no cursor
	Cursor string

	// input is being read from a script
	Scripted bool
}

func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Scripted {
		s.WriteString("(script) ")
	}
	if p.Cursor == "" {
		s.WriteString("md")
	} else {
		s.WriteString(p.Cursor)
	}
	s.WriteString(" ] > ")
	return s.String()
}
