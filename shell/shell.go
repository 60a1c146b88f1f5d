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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/memdisplay/memdisplay/aspace"
	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/hexdump"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/probe"
	"github.com/memdisplay/memdisplay/script"
	"github.com/memdisplay/memdisplay/symbols"
	"github.com/memdisplay/memdisplay/terminal"
)

// Sentinal error patterns.
const (
	UnknownCommand   = "shell: unknown command (%s)"
	MalformedCommand = "shell: usage: %s"
	NoCursor         = "shell: no previous address to continue from"
	ScriptDepth      = "shell: scripts nested too deeply (%d)"
)

const maxScriptDepth = 8

// Shell reads commands from a terminal and executes them.
type Shell struct {
	term     terminal.Terminal
	registry *aspace.Registry
	accessor *probe.Accessor
	renderer hexdump.Renderer
	symbols  *symbols.Table

	Prefs *Preferences

	cursor Cursor

	scriptDepth int
	running     bool
}

// NewShell is the preferred method of initialisation for the Shell type. The
// preferences file can be empty, in which case preferences cannot be saved.
func NewShell(term terminal.Terminal, registry *aspace.Registry, prefsFile string) (*Shell, error) {
	sh := &Shell{
		term:     term,
		registry: registry,
		renderer: hexdump.Renderer{Bus: probe.Direct},
		running:  true,
	}

	sh.accessor = probe.NewAccessor(terminal.NewLineWriter(term, terminal.StyleFeedback))

	var err error
	sh.Prefs, err = newPreferences(prefsFile)
	if err != nil {
		if sh.Prefs == nil {
			return nil, err
		}
		// preferences file could not be loaded. carry on with defaults
		logger.Logf(logger.Allow, "shell", "%v", err)
	}

	return sh, nil
}

// SetSymbols makes the symbol table available to the SYMBOL command and to
// address resolution.
func (sh *Shell) SetSymbols(tbl *symbols.Table) {
	sh.symbols = tbl
	if tbl != nil {
		sh.registry.Symbols = tbl.Lookup
	} else {
		sh.registry.Symbols = nil
	}
}

// Cursor returns a copy of the session cursor.
func (sh *Shell) Cursor() Cursor {
	return sh.cursor
}

// Run the shell until QUIT, end of input or user interrupt. The init script
// is run before the terminal is read from. It can be empty.
func (sh *Shell) Run(initScript string) error {
	if err := sh.term.Initialise(); err != nil {
		return err
	}
	defer sh.term.CleanUp()

	if initScript != "" {
		if err := sh.RunScript(initScript); err != nil {
			sh.printError(err)
		}
	}

	return sh.inputLoop(sh.term)
}

// RunScript executes the commands in a script file. Scripts can run other
// scripts.
func (sh *Shell) RunScript(scriptFile string) error {
	if sh.scriptDepth >= maxScriptDepth {
		return curated.Errorf(ScriptDepth, sh.scriptDepth)
	}

	scr, err := script.RescribeScript(scriptFile)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "shell", "running %s (%d commands)", scr, scr.Len())

	sh.scriptDepth++
	defer func() {
		sh.scriptDepth--
	}()

	return sh.inputLoop(scr)
}

func (sh *Shell) inputLoop(inputter terminal.Input) error {
	buffer := make([]byte, 4096)

	for sh.running {
		prompt := terminal.Prompt{
			Cursor:   sh.cursor.String(),
			Scripted: !inputter.IsInteractive(),
		}

		n, err := inputter.TermRead(buffer, prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, terminal.ErrUserInterrupt) {
				sh.running = false
				return nil
			}
			return err
		}

		input := string(buffer[:n])

		// input from a script is echoed
		if !inputter.IsInteractive() {
			sh.printLine(terminal.StyleEcho, "%s", input)
		}

		sh.Execute(input)
	}

	return nil
}

// Execute a single line of input. Errors are printed to the terminal. Returns
// false once the shell has been asked to quit.
func (sh *Shell) Execute(input string) bool {
	if err := sh.parseCommand(input); err != nil {
		sh.printError(err)
	}
	return sh.running
}

func (sh *Shell) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	for _, l := range strings.Split(s, "\n") {
		sh.term.TermPrintLine(sty, l)
	}
}

func (sh *Shell) printError(err error) {
	if curated.Has(err, aspace.HelpRequested) {
		sh.printLine(terminal.StyleHelp, sh.registry.Usage())
		return
	}

	var f *barrier.Fault
	if errors.As(err, &f) {
		sh.cursor.clear()
	}

	sh.printLine(terminal.StyleError, "%s", err)
}
