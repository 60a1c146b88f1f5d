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

package terminal_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/memdisplay/memdisplay/terminal"
	"github.com/memdisplay/memdisplay/test"
)

type recorder struct {
	lines []string
}

func (r *recorder) TermPrintLine(style terminal.Style, s string) {
	r.lines = append(r.lines, fmt.Sprintf("%d:%s", style, s))
}

func TestLineWriter(t *testing.T) {
	r := &recorder{}
	lw := terminal.NewLineWriter(r, terminal.StyleDump)

	fmt.Fprint(lw, "0000: 00 ")
	fmt.Fprint(lw, "01 | ..\n0002: ")
	test.ExpectEquality(t, cmp.Diff(r.lines, []string{"3:0000: 00 01 | .."}), "")

	test.ExpectSuccess(t, lw.Flush())
	test.ExpectEquality(t, cmp.Diff(r.lines, []string{"3:0000: 00 01 | ..", "3:0002: "}), "")

	// nothing left to flush
	test.ExpectSuccess(t, lw.Flush())
	test.ExpectEquality(t, len(r.lines), 2)
}

func TestPrompt(t *testing.T) {
	test.ExpectEquality(t, terminal.Prompt{}.String(), "[ md ] > ")
	test.ExpectEquality(t, terminal.Prompt{Cursor: "mem:0x1000", Scripted: true}.String(), "[ (script) mem:0x1000 ] > ")
}
