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

package probe

import (
	"fmt"

	"github.com/memdisplay/memdisplay/curated"
)

// Sentinal error patterns.
const (
	InvalidWordSize = "probe: invalid word size (%d)"
	AccessFault     = "probe: %v"
)

// Word describes the unit of access. Size is the number of bytes and Swap is
// true if the bytes of the unit should be reversed after reading and before
// writing.
//
// A Size of zero is only meaningful for the bulk operations (Fill, Copy and
// Compare) and has a different meaning for each.
type Word struct {
	Size int
	Swap bool
}

// LegacyWord converts the signed word size used on the command line, where a
// negative value requests a byte swap, to a Word.
func LegacyWord(n int) (Word, error) {
	w := Word{Size: n}
	if n < 0 {
		w.Size = -n
		w.Swap = true
	}
	if !w.valid() {
		return Word{}, curated.Errorf(InvalidWordSize, n)
	}
	return w, nil
}

// Legacy is the inverse of LegacyWord().
func (w Word) Legacy() int {
	if w.Swap {
		return -w.Size
	}
	return w.Size
}

func (w Word) String() string {
	if w.Swap {
		return fmt.Sprintf("%d (swapped)", w.Size)
	}
	return fmt.Sprintf("%d", w.Size)
}

func (w Word) valid() bool {
	switch w.Size {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// value as it is seen by the caller from value as it is on the bus, or the
// other way round.
func (w Word) order(v uint64) uint64 {
	if w.Swap {
		return Swap(v, w.Size)
	}
	return v
}
