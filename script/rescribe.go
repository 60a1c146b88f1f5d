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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/terminal"
)

// Sentinal error patterns.
const (
	ScriptFileUnavailable = "script: file unavailable: %v"
)

const commentLine = "#"

func isCommand(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && !strings.HasPrefix(line, commentLine)
}

// Rescribe is a previously written script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	scriptFile string
	lines      []string
	lineCt     int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(scriptFile string) (*Rescribe, error) {
	data, err := os.ReadFile(scriptFile)
	if err != nil {
		return nil, curated.Errorf(ScriptFileUnavailable, err)
	}

	scr := &Rescribe{scriptFile: scriptFile}
	for _, l := range strings.Split(string(data), "\n") {
		if isCommand(l) {
			scr.lines = append(scr.lines, strings.TrimSpace(l))
		}
	}

	return scr, nil
}

func (scr *Rescribe) String() string {
	return scr.scriptFile
}

// Len returns the number of commands in the script.
func (scr *Rescribe) Len() int {
	return len(scr.lines)
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. Returns io.EOF once all
// commands have been read.
func (scr *Rescribe) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if scr.lineCt >= len(scr.lines) {
		return 0, io.EOF
	}

	n := copy(buffer, scr.lines[scr.lineCt])
	scr.lineCt++

	return n, nil
}
