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
	"strings"
	"unicode"
)

// Tokens is the result of tokenising a line of input.
type Tokens struct {
	tokens []string
	curr   int
}

func (tk Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// TokeniseInput splits the input on white space. Double quotes group words
// into a single token.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{}

	var s strings.Builder
	quoted := false
	started := false

	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				tk.tokens = append(tk.tokens, s.String())
				s.Reset()
				started = false
			}
		default:
			s.WriteRune(r)
			started = true
		}
	}
	if started {
		tk.tokens = append(tk.tokens, s.String())
	}

	return tk
}

// Reset to the first token.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Len returns the number of tokens.
func (tk Tokens) Len() int {
	return len(tk.tokens)
}

// Remaining returns the number of tokens not yet consumed.
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// IsEnd returns true if all tokens have been consumed.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Get returns the next token and advances.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token without advancing.
func (tk Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Unget the most recent token.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}
