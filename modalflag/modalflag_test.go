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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/memdisplay/memdisplay/modalflag"
	"github.com/memdisplay/memdisplay/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-debug", "-term", "COLOR", "1", "2"})
	debug := md.AddBool("debug", false, "debug logging")
	term := md.AddString("term", "PLAIN", "terminal type")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *debug)
	test.ExpectEquality(t, *term, "COLOR")
	test.ExpectEquality(t, cmp.Diff(md.RemainingArgs(), []string{"1", "2"}), "")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestRepeatedFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-space", "a=/dev/a", "-space", "b=/dev/b"})

	var spaces []string
	md.AddFunc("space", "address space", func(s string) error {
		spaces = append(spaces, s)
		return nil
	})

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmp.Diff(spaces, []string{"a=/dev/a", "b=/dev/b"}), "")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "dump", "-word", "-4", "mem:0x100", "64"})
	md.AddSubModes("SHELL", "DUMP")
	log := md.AddBool("log", false, "echo log")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, md.Mode(), "DUMP")

	md.NewMode()
	word := md.AddInt("word", 2, "word size")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *word, -4)
	test.ExpectEquality(t, cmp.Diff(md.RemainingArgs(), []string{"mem:0x100", "64"}), "")
	test.ExpectEquality(t, md.Path(), "DUMP")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"script.md"})
	md.AddSubModes("SHELL", "DUMP")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "SHELL")
	test.ExpectEquality(t, cmp.Diff(md.RemainingArgs(), []string{"script.md"}), "")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	var out strings.Builder
	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available\n")
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	md := modalflag.Modes{Output: &out}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("SHELL", "DUMP")
	md.AddBool("log", true, "echo log")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	exp := "Usage:\n" +
		"  -log\n" +
		"    \techo log (default true)\n" +
		"\n" +
		"  available sub-modes: SHELL, DUMP\n" +
		"    default: SHELL\n"
	test.ExpectEquality(t, out.String(), exp)
}
