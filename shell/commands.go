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
	"fmt"
	"sort"
	"strings"
)

// shell keywords
const (
	cmdMD      = "MD"
	cmdDump    = "DUMP"
	cmdRead    = "READ"
	cmdWrite   = "WRITE"
	cmdFill    = "FILL"
	cmdCopy    = "COPY"
	cmdCompare = "COMPARE"
	cmdSpaces  = "SPACES"
	cmdSize    = "SIZE"
	cmdSymbol  = "SYMBOL"
	cmdGraph   = "GRAPH"

	// meta
	cmdLog     = "LOG"
	cmdPrefs   = "PREFS"
	cmdScript  = "SCRIPT"
	cmdVersion = "VERSION"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

var usage = map[string]string{
	cmdMD:      cmdMD + " [<address>|.|?] [<wordsize>] [<bytes>]",
	cmdDump:    cmdDump + " [<address>|.|?] [<wordsize>] [<bytes>]",
	cmdRead:    cmdRead + " <wordsize> <address>",
	cmdWrite:   cmdWrite + " <wordsize> <address> <value>",
	cmdFill:    cmdFill + " <address> <pattern> <bytes> [<wordsize>] [<increment>]",
	cmdCopy:    cmdCopy + " <source> <destination> <bytes> [<wordsize>]",
	cmdCompare: cmdCompare + " <address> <address> <bytes> [<wordsize>]",
	cmdSpaces:  cmdSpaces,
	cmdSize:    cmdSize + " <quantity>",
	cmdSymbol:  cmdSymbol + " <name>",
	cmdGraph:   cmdGraph + " [<file>]",
	cmdLog:     cmdLog + " [LAST|CLEAR|DEBUG (ON|OFF)]",
	cmdPrefs:   cmdPrefs + " [SAVE|LOAD|DEFAULT|SET <key> <value>]",
	cmdScript:  cmdScript + " <file>",
	cmdVersion: cmdVersion,
	cmdHelp:    cmdHelp + " [<command>]",
	cmdQuit:    cmdQuit,
}

// Help contains the help text for the shell's top level commands.
var Help = map[string]string{
	cmdMD: "Display memory as hex words and characters. A negative word size swaps the " +
		"bytes of each word. Omitted or zero values repeat those of the previous MD. " +
		"With no address, or an address of ., the display continues from where the previous MD stopped",
	cmdDump:    "Alias of MD",
	cmdRead:    "Read a single word and print its value. A negative word size swaps the bytes",
	cmdWrite:   "Write a single word. A negative word size swaps the bytes",
	cmdFill:    "Fill memory with a pattern, incrementing the pattern after every word. A word size of zero selects the word size from the pattern",
	cmdCopy:    "Copy memory and report the throughput. A word size of zero copies a stream of bytes",
	cmdCompare: "Compare memory and report the first difference. Words from the first address are swapped if the word size is negative",
	cmdSpaces:  "List the known address spaces",
	cmdSize:    "Show a quantity in hex and in magnitude notation (eg. 0x1400=5K)",
	cmdSymbol:  "Search for global variables of the program",
	cmdGraph:   "Write a graphviz description of the address space registry. A filename is chosen if one is not given",
	cmdLog:     "Print the log. DEBUG turns logging of fault barrier activity on or off",
	cmdPrefs:   "Show, change, save or load the shell preferences",
	cmdScript:  "Run commands from a file. Lines beginning with # are ignored",
	cmdVersion: "Print the version of memdisplay",
	cmdHelp:    "Lists commands and provides help for individual commands",
	cmdQuit:    "Exits the shell",
}

// the address syntax is printed with the help for commands that take an
// address
const addressHelp = "addresses are [<space>:]<numeral>, numerals may be followed by K, M, G, T, P or E"

func commandList() []string {
	keys := make([]string, 0, len(usage))
	for k := range usage {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func helpFor(keyword string) ([]string, bool) {
	keyword = strings.ToUpper(keyword)
	u, ok := usage[keyword]
	if !ok {
		return nil, false
	}

	lines := []string{u, Help[keyword]}
	if strings.Contains(u, "<address>") || strings.Contains(u, "<source>") {
		lines = append(lines, addressHelp)
	}

	return lines, true
}

func helpOverview() []string {
	var lines []string
	var s strings.Builder
	for i, k := range commandList() {
		s.WriteString(fmt.Sprintf("%-10s", k))
		if i%6 == 5 {
			lines = append(lines, strings.TrimSpace(s.String()))
			s.Reset()
		}
	}
	if s.Len() > 0 {
		lines = append(lines, strings.TrimSpace(s.String()))
	}
	return lines
}
