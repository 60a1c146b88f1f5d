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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes is a layered command line. The Output field should be set before the
// first call to Parse() otherwise help messages will not be seen.
type Modes struct {
	// help messages are written to Output
	Output io.Writer

	flags *flag.FlagSet

	args []string

	// sub-modes for the current layer. the first entry is the default
	subModes []string

	// the sub-modes selected by all calls to Parse()
	path []string

	additionalHelp string
	parsed         bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all selected sub-modes separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and starts a new layer.
func (md *Modes) NewArgs(args []string) {
	md.flags = nil
	md.path = nil
	md.NewMode()
	md.args = args
}

// NewMode starts a new layer. Flags and sub-modes of the previous layer are
// forgotten.
func (md *Modes) NewMode() {
	if md.flags != nil && md.parsed {
		md.args = md.RemainingArgs()
	}
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp is printed after the flags and sub-modes when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called for the current layer.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// continue processing the command line. if sub-modes were added for this
	// layer then Mode() returns the selected sub-mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the error returned alongside should be reported
	ParseError
)

// Parse the current layer.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments of the current layer that are neither
// flags nor the selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.EqualFold(args[0], md.Mode()) {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered entry of RemainingArgs() or the empty string.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the current layer. The first sub-mode added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag to the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddFunc adds a flag that calls fn every time it appears on the command
// line. Useful for flags that can be repeated.
func (md *Modes) AddFunc(name string, usage string, fn func(string) error) {
	md.flags.Func(name, usage, fn)
}

// Visit calls fn with the name of every flag in the current layer that has
// been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
