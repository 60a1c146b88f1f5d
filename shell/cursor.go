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

	"github.com/memdisplay/memdisplay/aspace"
)

// Cursor is the state carried between MD commands.
type Cursor struct {
	// the address string given to the most recent MD. empty if there is no
	// cursor
	Address string

	// the resolution used by the most recent MD
	Resolved aspace.Resolved

	// word size in the signed form. negative values swap bytes
	WordSize int

	Bytes uint64

	// bytes displayed since Address was given
	Offset uint64
}

func (c Cursor) String() string {
	if c.Address == "" {
		return ""
	}
	if c.Offset == 0 {
		return c.Address
	}
	return fmt.Sprintf("%s+%#x", c.Address, c.Offset)
}

// Valid returns true if there is an address to continue from.
func (c Cursor) Valid() bool {
	return c.Address != ""
}

// clear the address but keep the word size and byte count
func (c *Cursor) clear() {
	c.Address = ""
	c.Resolved = aspace.Resolved{}
	c.Offset = 0
}
