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

package shell_test

import (
	"testing"

	"github.com/memdisplay/memdisplay/shell"
	"github.com/memdisplay/memdisplay/test"
)

func TestTokens(t *testing.T) {
	tk := shell.TokeniseInput("  md   A32:0x100  -4 ")
	test.ExpectEquality(t, tk.Len(), 3)
	test.ExpectEquality(t, tk.String(), "md A32:0x100 -4")

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "md")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "A32:0x100")
	test.ExpectEquality(t, tk.Remaining(), 2)

	tk.Get()
	tk.Unget()
	s, _ = tk.Get()
	test.ExpectEquality(t, s, "A32:0x100")

	s, _ = tk.Get()
	test.ExpectEquality(t, s, "-4")
	test.ExpectSuccess(t, tk.IsEnd())

	_, ok = tk.Get()
	test.ExpectFailure(t, ok)
	_, ok = tk.Peek()
	test.ExpectFailure(t, ok)

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestQuotedTokens(t *testing.T) {
	tk := shell.TokeniseInput(`graph "my file.dot" ""`)
	test.DemandEquality(t, tk.Len(), 3)

	tk.Get()
	s, _ := tk.Get()
	test.ExpectEquality(t, s, "my file.dot")

	// empty quotes are an empty token
	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "")
}

func TestEmptyInput(t *testing.T) {
	tk := shell.TokeniseInput("   ")
	test.ExpectEquality(t, tk.Len(), 0)
	test.ExpectSuccess(t, tk.IsEnd())
}
