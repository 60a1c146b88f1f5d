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

package quantity

import (
	"fmt"
	"math"
	"strings"

	"github.com/memdisplay/memdisplay/curated"
)

// InvalidQuantity is returned by ParseAll() when the string is not entirely
// a quantity.
const InvalidQuantity = "quantity: invalid quantity (%s)"

type magnitude struct {
	shift  uint
	suffix byte
}

// largest first. the order is important to Format()
var magnitudes = []magnitude{
	{60, 'E'},
	{50, 'P'},
	{40, 'T'},
	{30, 'G'},
	{20, 'M'},
	{10, 'K'},
}

func suffixShift(c byte) (uint, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for _, m := range magnitudes {
		if m.suffix == c {
			return m.shift, true
		}
	}
	return 0, false
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// literal parses a single integer literal from the start of s. returns the
// value and the number of bytes consumed. leading white space and a sign are
// accepted and a negative value wraps. values that do not fit into 64 bits
// saturate to math.MaxUint64 but the digits are still consumed.
func literal(s string) (uint64, int) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	start := i

	if i < len(s) && s[i] == '0' {
		if len(s) > i+2 && (s[i+1] == 'x' || s[i+1] == 'X') {
			if _, ok := digitValue(s[i+2]); ok {
				base = 16
				start = i + 2
			}
		}
		if base == 10 {
			base = 8
		}
	}

	var v uint64
	var overflow bool
	i = start
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i])
		if !ok || d >= base {
			break
		}
		if v > (math.MaxUint64-d)/base {
			overflow = true
		}
		v = v*base + d
	}

	if i == start {
		return 0, 0
	}

	if overflow {
		return math.MaxUint64, i
	}

	if neg {
		v = -v
	}

	return v, i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Parse the string as a quantity. Returns the value and the number of bytes
// of the string that were consumed. Parsing stops at the first byte that
// cannot be part of a quantity. An empty string results in (0, 0).
//
// Each literal may be preceded by white space and a sign, so "1K 512" is 1536
// and "1K-512" is 512.
func Parse(s string) (uint64, int) {
	var sum uint64
	var pos int

	for pos < len(s) {
		n, c := literal(s[pos:])
		if c == 0 {
			break
		}
		pos += c

		if pos < len(s) {
			if shift, ok := suffixShift(s[pos]); ok {
				n <<= shift
				pos++
			}
		}

		sum += n
	}

	return sum, pos
}

// ParseAll is like Parse() but the entire string must be consumed.
func ParseAll(s string) (uint64, error) {
	v, n := Parse(s)
	if n == 0 || n != len(s) {
		return 0, curated.Errorf(InvalidQuantity, s)
	}
	return v, nil
}

// Format a value as hex followed by its magnitude decomposition.
func Format(v uint64) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#x=", v))

	terms := 0
	for _, m := range magnitudes {
		if v >= 1<<m.shift {
			s.WriteString(fmt.Sprintf("%d%c", v>>m.shift, m.suffix))
			v &= 1<<m.shift - 1
			terms++
		}
	}

	if v > 0 || terms == 0 {
		s.WriteString(fmt.Sprintf("%d", v))
	}

	return s.String()
}
