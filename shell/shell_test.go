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

//go:build unix

package shell_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/memdisplay/memdisplay/aspace"
	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/probe"
	"github.com/memdisplay/memdisplay/shell"
	"github.com/memdisplay/memdisplay/terminal"
	"github.com/memdisplay/memdisplay/test"
)

type line struct {
	style terminal.Style
	text  string
}

// mockTerm is an interactive terminal that reads from a list of prepared
// lines and records everything printed to it
type mockTerm struct {
	input []string
	lines []line
}

func (m *mockTerm) Initialise() error { return nil }
func (m *mockTerm) CleanUp()          {}
func (m *mockTerm) Silence(bool)      {}

func (m *mockTerm) IsInteractive() bool {
	return true
}

func (m *mockTerm) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if len(m.input) == 0 {
		return 0, io.EOF
	}
	n := copy(buffer, m.input[0])
	m.input = m.input[1:]
	return n, nil
}

func (m *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	m.lines = append(m.lines, line{style: sty, text: s})
}

func (m *mockTerm) styled(sty terminal.Style) []string {
	var s []string
	for _, l := range m.lines {
		if l.style == sty {
			s = append(s, l.text)
		}
	}
	return s
}

func (m *mockTerm) reset() {
	m.lines = m.lines[:0]
}

// the T address space maps directly onto the test pages
func newShell(t *testing.T, pg *test.Pages, prefsFile string) (*shell.Shell, *mockTerm) {
	t.Helper()

	term := &mockTerm{}
	r := aspace.NewRegistry()
	test.DemandSuccess(t, r.InstallHandler("T", func(addr uint64, size uint64, _ any) (probe.Address, error) {
		return probe.Address(pg.Base) + probe.Address(addr), nil
	}, nil))

	sh, err := shell.NewShell(term, r, prefsFile)
	test.DemandSuccess(t, err)

	return sh, term
}

func alphabet(pg *test.Pages) {
	for i := range pg.Data {
		pg.Data[i] = 'A' + byte(i%16)
	}
}

func TestMD(t *testing.T) {
	pg := test.MapPages(t, 1)
	alphabet(pg)
	sh, term := newShell(t, pg, "")

	test.ExpectSuccess(t, sh.Execute("md T:0 1 0x20"))
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 0)

	dump := term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 2)
	test.ExpectEquality(t, dump[0], "0000: 41 42 43 44 45 46 47 48 49 4a 4b 4c 4d 4e 4f 50 | ABCDEFGHIJKLMNOP")
	test.ExpectEquality(t, dump[1], "0010: 41 42 43 44 45 46 47 48 49 4a 4b 4c 4d 4e 4f 50 | ABCDEFGHIJKLMNOP")

	c := sh.Cursor()
	test.ExpectEquality(t, c.Address, "T:0")
	test.ExpectEquality(t, c.WordSize, 1)
	test.ExpectEquality(t, c.Bytes, uint64(0x20))
	test.ExpectEquality(t, c.Offset, uint64(0x20))
	test.ExpectEquality(t, c.String(), "T:0+0x20")

	// continue from the cursor with the same word size and byte count
	term.reset()
	sh.Execute("md")
	dump = term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 2)
	test.ExpectSuccess(t, strings.HasPrefix(dump[0], "0020: 41 42"))
	test.ExpectEquality(t, sh.Cursor().Offset, uint64(0x40))

	// continue with a different word size
	term.reset()
	sh.Execute("md . 4 0x10")
	dump = term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 1)
	test.ExpectSuccess(t, strings.HasPrefix(dump[0], "0040: 44434241 "))
	test.ExpectEquality(t, sh.Cursor().WordSize, 4)

	// a new address resets the offset. zero values repeat the previous ones
	term.reset()
	sh.Execute("dump T:0x100 0 0")
	dump = term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 1)
	test.ExpectSuccess(t, strings.HasPrefix(dump[0], "0100: 44434241 "))
	test.ExpectEquality(t, sh.Cursor().Offset, uint64(0x10))
}

func TestMDDefaults(t *testing.T) {
	pg := test.MapPages(t, 1)
	alphabet(pg)
	sh, term := newShell(t, pg, "")

	sh.Execute("md T:0")
	dump := term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 8)
	test.ExpectEquality(t, dump[7], "0070: 4241 4443 4645 4847 4a49 4c4b 4e4d 504f | ABCDEFGHIJKLMNOP")

	// preferences are only used when there is no previous value
	test.DemandSuccess(t, sh.Prefs.Set("shell.wordsize", "-2"))
	term.reset()
	sh.Execute("md T:0 0 0x10")
	dump = term.styled(terminal.StyleDump)
	test.DemandEquality(t, len(dump), 1)
	test.ExpectSuccess(t, strings.HasPrefix(dump[0], "0000: 4241 "))
}

func TestMDErrors(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	// no cursor yet
	sh.Execute("md")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 1)

	term.reset()
	sh.Execute("md T:0 3")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 1)
	test.ExpectFailure(t, sh.Cursor().Valid())

	term.reset()
	sh.Execute("md X:0")
	errs := term.styled(terminal.StyleError)
	test.DemandEquality(t, len(errs), 1)
	test.ExpectSuccess(t, strings.Contains(errs[0], "known spaces: T"))

	term.reset()
	sh.Execute("md ?")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 0)
	help := term.styled(terminal.StyleHelp)
	test.DemandEquality(t, len(help), 3)
	test.ExpectSuccess(t, strings.HasPrefix(help[0], "MD "))
	test.ExpectEquality(t, help[2], "known address spaces: T")
}

func TestMDFault(t *testing.T) {
	pg := test.GuardedPages(t, 1)
	sh, term := newShell(t, pg, "")

	sh.Execute("md T:0 1 0x10")
	test.ExpectSuccess(t, sh.Cursor().Valid())

	// the second row is in the guard page
	term.reset()
	sh.Execute(fmt.Sprintf("md T:%#x 1 0x20", len(pg.Data)-0x10))

	dump := term.styled(terminal.StyleDump)
	test.DemandSuccess(t, len(dump) > 0)
	test.ExpectSuccess(t, strings.HasSuffix(dump[0], "| ................"))

	errs := term.styled(terminal.StyleError)
	test.DemandEquality(t, len(errs), 1)
	test.ExpectSuccess(t, strings.Contains(errs[0], "fault"))

	test.ExpectFailure(t, sh.Cursor().Valid())
	test.ExpectFailure(t, barrier.Armed())

	// word size and byte count survive the fault
	test.ExpectEquality(t, sh.Cursor().WordSize, 1)
}

func TestProbeCommands(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	sh.Execute("fill T:0 0x41 0x10 1 1")
	test.ExpectEquality(t, string(pg.Data[:0x10]), "ABCDEFGHIJKLMNOP")

	sh.Execute("read 4 T:0")
	sh.Execute("read -4 T:0")
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{"0x44434241", "0x41424344"}), "")

	term.reset()
	sh.Execute("copy T:0 T:0x100 0x10")
	test.ExpectEquality(t, string(pg.Data[0x100:0x110]), "ABCDEFGHIJKLMNOP")
	fb := term.styled(terminal.StyleFeedback)
	test.DemandEquality(t, len(fb), 1)
	test.ExpectSuccess(t, strings.HasPrefix(fb[0], "copied 0x10=16 bytes in "))

	term.reset()
	sh.Execute("compare T:0 T:0x100 0x10")
	sh.Execute("write 1 T:0x105 0")
	sh.Execute("compare T:0 T:0x100 0x10")
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{
		"match",
		"Success.",
		"mismatch at offset 0x5: 0x46 != 0x0",
	}), "")

	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 0)
}

func TestProbeFault(t *testing.T) {
	pg := test.GuardedPages(t, 1)
	sh, term := newShell(t, pg, "")

	sh.Execute(fmt.Sprintf("read 4 T:%#x", len(pg.Data)))
	sh.Execute(fmt.Sprintf("write 4 T:%#x 1", len(pg.Data)))
	sh.Execute(fmt.Sprintf("fill T:%#x 0xff 0x20", len(pg.Data)-0x10))

	errs := term.styled(terminal.StyleError)
	test.DemandEquality(t, len(errs), 3)
	for _, e := range errs {
		test.ExpectSuccess(t, strings.Contains(e, "fault"), e)
	}
	test.ExpectEquality(t, len(term.styled(terminal.StyleFeedback)), 0)

	// the fill stopped at the guard page
	test.ExpectEquality(t, pg.Data[len(pg.Data)-1], byte(0xff))
}

func TestMetaCommands(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	sh.Execute("size 5K")
	sh.Execute("spaces")
	sh.Execute("symbol anchor")
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{
		"0x1400=5K",
		"T",
		"no symbols available",
	}), "")

	term.reset()
	sh.Execute("version")
	fb := term.styled(terminal.StyleFeedback)
	test.DemandEquality(t, len(fb), 1)
	test.ExpectSuccess(t, strings.HasPrefix(fb[0], "memdisplay "))

	term.reset()
	sh.Execute("help")
	test.ExpectSuccess(t, len(term.styled(terminal.StyleHelp)) > 0)

	term.reset()
	sh.Execute("help fill")
	help := term.styled(terminal.StyleHelp)
	test.DemandEquality(t, len(help), 3)
	test.ExpectSuccess(t, strings.HasPrefix(help[0], "FILL "))

	term.reset()
	sh.Execute("bogus")
	sh.Execute("read 4")
	sh.Execute("help bogus")
	sh.Execute("size 5Q")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 4)

	// empty input does nothing
	term.reset()
	test.ExpectSuccess(t, sh.Execute("   "))
	test.ExpectEquality(t, len(term.lines), 0)

	test.ExpectFailure(t, sh.Execute("quit"))
}

func TestGraph(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	fn := filepath.Join(t.TempDir(), "spaces.dot")
	sh.Execute(fmt.Sprintf("graph %q", fn))
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 0)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
	test.ExpectSuccess(t, strings.Contains(string(data), "T"))
}

func TestLogDebug(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")
	t.Cleanup(func() {
		barrier.Debug.Set(false)
	})

	sh.Execute("log debug on")
	test.ExpectSuccess(t, barrier.Debug.AllowLogging())
	test.ExpectSuccess(t, sh.Prefs.BarrierDebug.Get().(bool))

	sh.Execute("md T:0 1 0x10")
	term.reset()
	sh.Execute("log last")
	logged := term.styled(terminal.StyleLog)
	test.DemandEquality(t, len(logged), 1)
	test.ExpectSuccess(t, strings.Contains(logged[0], "barrier"))

	sh.Execute("log debug off")
	test.ExpectFailure(t, barrier.Debug.AllowLogging())

	term.reset()
	sh.Execute("log debug maybe")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 1)
}

func TestPrefs(t *testing.T) {
	pg := test.MapPages(t, 1)
	fn := filepath.Join(t.TempDir(), "prefs")

	sh, term := newShell(t, pg, fn)
	sh.Execute("prefs set shell.wordsize 4")
	sh.Execute("prefs set shell.bytes 1K")
	sh.Execute("prefs save")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 0)

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "shell.wordsize :: 4\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "shell.bytes :: 1024\n"))

	// a new shell loads the saved preferences
	sh, term = newShell(t, pg, fn)
	test.ExpectEquality(t, sh.Prefs.WordSize.Get().(int), 4)
	test.ExpectEquality(t, sh.Prefs.Bytes.Get().(int), 1024)

	sh.Execute("prefs default")
	test.ExpectEquality(t, sh.Prefs.WordSize.Get().(int), 2)

	sh.Execute("prefs load")
	test.ExpectEquality(t, sh.Prefs.WordSize.Get().(int), 4)

	term.reset()
	sh.Execute("prefs")
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{
		"barrier.debug    false",
		"shell.bytes      1024",
		"shell.wordsize   4",
	}), "")

	term.reset()
	sh.Execute("prefs set shell.colour true")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 1)

	// preferences without a file cannot be saved
	sh, term = newShell(t, pg, "")
	sh.Execute("prefs save")
	test.ExpectEquality(t, len(term.styled(terminal.StyleError)), 1)
}

func writeScript(t *testing.T, name string, lines ...string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(strings.Join(lines, "\n")), 0o644))
	return fn
}

func TestScript(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	fn := writeScript(t, "script", "# a comment", "", "size 5K", "quit", "size 1K")
	test.ExpectSuccess(t, sh.RunScript(fn))

	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{"0x1400=5K"}), "")
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleEcho), []string{"size 5K", "quit"}), "")

	// the shell has quit
	test.ExpectFailure(t, sh.Execute(""))
}

func TestScriptRecursion(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	fn := filepath.Join(t.TempDir(), "recurse")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(fmt.Sprintf("script %q\n", fn)), 0o644))

	test.ExpectSuccess(t, sh.RunScript(fn))
	errs := term.styled(terminal.StyleError)
	test.DemandEquality(t, len(errs), 1)
	test.ExpectSuccess(t, strings.Contains(errs[0], "nested"))

	test.ExpectFailure(t, sh.RunScript(filepath.Join(t.TempDir(), "missing")))
}

func TestRun(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	init := writeScript(t, "init", "size 2K")
	term.input = []string{"size 1K", "quit", "size 3K"}

	test.ExpectSuccess(t, sh.Run(init))
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{"0x800=2K", "0x400=1K"}), "")
	test.ExpectEquality(t, len(term.input), 1)
}

func TestRunEOF(t *testing.T) {
	pg := test.MapPages(t, 1)
	sh, term := newShell(t, pg, "")

	term.input = []string{"size 1K"}
	test.ExpectSuccess(t, sh.Run(""))
	test.ExpectEquality(t, cmp.Diff(term.styled(terminal.StyleFeedback), []string{"0x400=1K"}), "")
}
