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

//go:build !statsview

package statsview_test

import (
	"strings"
	"testing"

	"github.com/memdisplay/memdisplay/statsview"
	"github.com/memdisplay/memdisplay/test"
)

func TestUnavailable(t *testing.T) {
	var out strings.Builder
	test.ExpectFailure(t, statsview.Available())
	statsview.Launch(&out)
	statsview.Stop()
	test.ExpectEquality(t, out.Len(), 0)
}
