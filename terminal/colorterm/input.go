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

//go:build linux || darwin || freebsd

package colorterm

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/memdisplay/memdisplay/terminal"
	"github.com/memdisplay/memdisplay/terminal/colorterm/easyterm"
	"github.com/memdisplay/memdisplay/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.EasyTerm.CBreakMode()
	defer ct.EasyTerm.CanonicalMode()

	p := prompt.String()

	// er is used to store encoded runes
	er := make([]byte, utf8.UTFMax)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept when scrolling through history so that the
	// user can return to it
	buffInput := make([]byte, len(input))
	buffN := 0

	// the cursor is placed after the prompt. on every iteration the line is
	// cleared and redrawn before the cursor is restored
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(p)))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, terminal.ErrUserInterrupt

		case easyterm.KeyEOT:
			if n == 0 {
				ct.EasyTerm.TermPrint("\n")
				return 0, io.EOF
			}

		case easyterm.KeySuspend:
			ct.EasyTerm.CanonicalMode()
			easyterm.SuspendProcess()
			ct.EasyTerm.CBreakMode()

		case easyterm.KeyCarriageReturn, '\n':
			if n > 0 {
				last := len(ct.commandHistory) - 1
				if last < 0 || !bytes.Equal(ct.commandHistory[last].input, input[:n]) {
					ct.commandHistory = append(ct.commandHistory, command{input: bytes.Clone(input[:n])})
				}
			}
			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				break // switch
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}
					history--
					n = copy(input, ct.commandHistory[history].input)
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					n = copy(input, ct.commandHistory[history].input)
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					n = copy(input, buffInput[:buffN])
					ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}
			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}
			case easyterm.CursorHome:
				ct.EasyTerm.TermPrint(ansi.CursorMove(-cursor))
				cursor = 0
			case easyterm.CursorEnd:
				ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
				cursor = n
			case easyterm.EscDelete:
				// the delete sequence is terminated by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > len(input) {
					break // switch
				}
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				ct.EasyTerm.TermPrint(ansi.CursorMove(1))
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
