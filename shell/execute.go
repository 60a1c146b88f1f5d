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
	"os"
	"strings"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/paths"
	"github.com/memdisplay/memdisplay/probe"
	"github.com/memdisplay/memdisplay/quantity"
	"github.com/memdisplay/memdisplay/terminal"
	"github.com/memdisplay/memdisplay/version"
)

func (sh *Shell) parseCommand(input string) error {
	tokens := TokeniseInput(input)

	command, ok := tokens.Get()
	if !ok {
		// user pressed return
		return nil
	}
	command = strings.ToUpper(command)

	switch command {
	case cmdMD, cmdDump:
		return sh.md(tokens)

	case cmdRead:
		return sh.read(tokens)

	case cmdWrite:
		return sh.write(tokens)

	case cmdFill:
		return sh.fill(tokens)

	case cmdCopy:
		return sh.copy(tokens)

	case cmdCompare:
		return sh.compare(tokens)

	case cmdSpaces:
		names := sh.registry.Names()
		if len(names) == 0 {
			sh.printLine(terminal.StyleFeedback, "no address spaces")
		}
		for _, n := range names {
			sh.printLine(terminal.StyleFeedback, n)
		}

	case cmdSize:
		s, ok := tokens.Get()
		if !ok {
			return malformed(command)
		}
		v, err := quantity.ParseAll(s)
		if err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, quantity.Format(v))

	case cmdSymbol:
		return sh.symbol(tokens)

	case cmdGraph:
		fn, ok := tokens.Get()
		if !ok {
			fn = paths.UniqueFilename("aspace", "", "dot")
		}
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		sh.registry.Graph(f)
		if err := f.Close(); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "graph written to %s", fn)

	case cmdLog:
		return sh.log(tokens)

	case cmdPrefs:
		return sh.prefs(tokens)

	case cmdScript:
		fn, ok := tokens.Get()
		if !ok {
			return malformed(command)
		}
		return sh.RunScript(fn)

	case cmdVersion:
		sh.printLine(terminal.StyleFeedback, "%s %s", version.ApplicationName, version.Version())

	case cmdHelp:
		keyword, ok := tokens.Get()
		if !ok {
			sh.printLine(terminal.StyleHelp, strings.Join(helpOverview(), "\n"))
			return nil
		}
		lines, ok := helpFor(keyword)
		if !ok {
			return curated.Errorf(UnknownCommand, keyword)
		}
		sh.printLine(terminal.StyleHelp, strings.Join(lines, "\n"))

	case cmdQuit:
		sh.running = false

	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

func malformed(command string) error {
	return curated.Errorf(MalformedCommand, usage[command])
}

// a signed quantity. used for word sizes, where a negative value requests a
// byte swap
func signed(s string) (int, error) {
	neg := strings.HasPrefix(s, "-")
	v, err := quantity.ParseAll(strings.TrimPrefix(s, "-"))
	if err != nil {
		return 0, err
	}
	if neg {
		return -int(v), nil
	}
	return int(v), nil
}

// a word size where zero is allowed and means something to the operation
func bulkWord(s string) (probe.Word, error) {
	n, err := signed(s)
	if err != nil {
		return probe.Word{}, err
	}
	if n == 0 {
		return probe.Word{}, nil
	}
	return probe.LegacyWord(n)
}

func (sh *Shell) md(tokens *Tokens) error {
	address, ok := tokens.Get()

	if address == "?" {
		sh.printLine(terminal.StyleHelp, usage[cmdMD])
		_, err := sh.registry.Resolve(address, 0, 0)
		return err
	}

	var offset uint64

	if !ok || address == "." {
		if !sh.cursor.Valid() {
			return curated.Errorf(NoCursor)
		}
		address = sh.cursor.Address
		offset = sh.cursor.Offset
	}

	wordSize := sh.cursor.WordSize
	if wordSize == 0 {
		wordSize = sh.Prefs.WordSize.Get().(int)
	}
	if s, ok := tokens.Get(); ok {
		n, err := signed(s)
		if err != nil {
			return err
		}
		if n != 0 {
			wordSize = n
		}
	}
	if _, err := probe.LegacyWord(wordSize); err != nil {
		return err
	}

	count := sh.cursor.Bytes
	if count == 0 {
		count = uint64(sh.Prefs.Bytes.Get().(int))
	}
	if s, ok := tokens.Get(); ok {
		n, err := quantity.ParseAll(s)
		if err != nil {
			return err
		}
		if n != 0 {
			count = n
		}
	}

	res, err := sh.registry.Resolve(address, offset, count)
	if err != nil {
		return err
	}

	lw := terminal.NewLineWriter(sh.term, terminal.StyleDump)
	_, err = sh.renderer.Render(lw, res.Addr, res.Ptr, wordSize, count)
	_ = lw.Flush()
	if err != nil {
		return err
	}

	sh.cursor.Address = address
	sh.cursor.Resolved = res
	sh.cursor.WordSize = wordSize
	sh.cursor.Bytes = count
	sh.cursor.Offset = offset + count

	return nil
}

func (sh *Shell) read(tokens *Tokens) error {
	ws, ok1 := tokens.Get()
	address, ok2 := tokens.Get()
	if !ok1 || !ok2 {
		return malformed(cmdRead)
	}

	n, err := signed(ws)
	if err != nil {
		return err
	}
	w, err := probe.LegacyWord(n)
	if err != nil {
		return err
	}

	res, err := sh.registry.Resolve(address, 0, uint64(w.Size))
	if err != nil {
		return err
	}

	v, err := sh.accessor.Read(res.Ptr, w)
	if err != nil {
		return err
	}

	sh.printLine(terminal.StyleFeedback, "%#x", v)
	return nil
}

func (sh *Shell) write(tokens *Tokens) error {
	ws, ok1 := tokens.Get()
	address, ok2 := tokens.Get()
	value, ok3 := tokens.Get()
	if !ok1 || !ok2 || !ok3 {
		return malformed(cmdWrite)
	}

	n, err := signed(ws)
	if err != nil {
		return err
	}
	w, err := probe.LegacyWord(n)
	if err != nil {
		return err
	}

	v, err := quantity.ParseAll(value)
	if err != nil {
		return err
	}

	res, err := sh.registry.Resolve(address, 0, uint64(w.Size))
	if err != nil {
		return err
	}

	if err := sh.accessor.Write(res.Ptr, w, v); err != nil {
		return err
	}

	sh.printLine(terminal.StyleFeedback, "Success.")
	return nil
}

func (sh *Shell) fill(tokens *Tokens) error {
	address, ok1 := tokens.Get()
	pattern, ok2 := tokens.Get()
	total, ok3 := tokens.Get()
	if !ok1 || !ok2 || !ok3 {
		return malformed(cmdFill)
	}

	p, err := quantity.ParseAll(pattern)
	if err != nil {
		return err
	}
	n, err := quantity.ParseAll(total)
	if err != nil {
		return err
	}

	var w probe.Word
	if s, ok := tokens.Get(); ok {
		w, err = bulkWord(s)
		if err != nil {
			return err
		}
	}

	var inc uint64
	if s, ok := tokens.Get(); ok {
		inc, err = quantity.ParseAll(s)
		if err != nil {
			return err
		}
	}

	res, err := sh.registry.Resolve(address, 0, n)
	if err != nil {
		return err
	}

	return sh.accessor.Fill(res.Ptr, p, n, w, inc)
}

func (sh *Shell) copy(tokens *Tokens) error {
	src, ok1 := tokens.Get()
	dst, ok2 := tokens.Get()
	total, ok3 := tokens.Get()
	if !ok1 || !ok2 || !ok3 {
		return malformed(cmdCopy)
	}

	n, err := quantity.ParseAll(total)
	if err != nil {
		return err
	}

	var w probe.Word
	if s, ok := tokens.Get(); ok {
		w, err = bulkWord(s)
		if err != nil {
			return err
		}
	}

	from, err := sh.registry.Resolve(src, 0, n)
	if err != nil {
		return err
	}
	to, err := sh.registry.Resolve(dst, 0, n)
	if err != nil {
		return err
	}

	return sh.accessor.Copy(from.Ptr, to.Ptr, n, w)
}

func (sh *Shell) compare(tokens *Tokens) error {
	a, ok1 := tokens.Get()
	b, ok2 := tokens.Get()
	total, ok3 := tokens.Get()
	if !ok1 || !ok2 || !ok3 {
		return malformed(cmdCompare)
	}

	n, err := quantity.ParseAll(total)
	if err != nil {
		return err
	}

	var w probe.Word
	if s, ok := tokens.Get(); ok {
		w, err = bulkWord(s)
		if err != nil {
			return err
		}
	}

	p, err := sh.registry.Resolve(a, 0, n)
	if err != nil {
		return err
	}
	q, err := sh.registry.Resolve(b, 0, n)
	if err != nil {
		return err
	}

	res, err := sh.accessor.Compare(p.Ptr, q.Ptr, n, w)
	if err != nil {
		return err
	}

	sh.printLine(terminal.StyleFeedback, res.String())
	return nil
}

func (sh *Shell) symbol(tokens *Tokens) error {
	name, ok := tokens.Get()
	if !ok {
		return malformed(cmdSymbol)
	}

	if sh.symbols.Len() == 0 {
		sh.printLine(terminal.StyleFeedback, "no symbols available")
		return nil
	}

	found := sh.symbols.Search(name)
	if len(found) == 0 {
		sh.printLine(terminal.StyleFeedback, "no symbols matching %s", name)
		return nil
	}

	for _, s := range found {
		sh.printLine(terminal.StyleFeedback, "%#x %s (%d bytes)", s.Address, s.Name, s.Size)
	}

	return nil
}

func (sh *Shell) log(tokens *Tokens) error {
	lw := terminal.NewLineWriter(sh.term, terminal.StyleLog)
	defer lw.Flush()

	option, ok := tokens.Get()
	if !ok {
		logger.Write(lw)
		return nil
	}

	switch strings.ToUpper(option) {
	case "LAST":
		logger.Tail(lw, 1)
	case "CLEAR":
		logger.Clear()
	case "DEBUG":
		onoff, ok := tokens.Get()
		if !ok {
			sh.printLine(terminal.StyleFeedback, "barrier debug logging: %v", sh.Prefs.BarrierDebug.String())
			return nil
		}
		switch strings.ToUpper(onoff) {
		case "ON":
			return sh.Prefs.BarrierDebug.Set(true)
		case "OFF":
			return sh.Prefs.BarrierDebug.Set(false)
		default:
			return malformed(cmdLog)
		}
	default:
		return malformed(cmdLog)
	}

	return nil
}

func (sh *Shell) prefs(tokens *Tokens) error {
	option, ok := tokens.Get()
	if !ok {
		sh.printLine(terminal.StyleFeedback, sh.Prefs.String())
		return nil
	}

	switch strings.ToUpper(option) {
	case "SAVE":
		if err := sh.Prefs.Save(); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "preferences saved to %s", sh.Prefs.dsk.Path())
	case "LOAD":
		if err := sh.Prefs.Load(); err != nil {
			return err
		}
		sh.printLine(terminal.StyleFeedback, "preferences loaded from %s", sh.Prefs.dsk.Path())
	case "DEFAULT":
		sh.Prefs.SetDefaults()
	case "SET":
		key, ok1 := tokens.Get()
		value, ok2 := tokens.Get()
		if !ok1 || !ok2 {
			return malformed(cmdPrefs)
		}
		return sh.Prefs.Set(key, value)
	default:
		return malformed(cmdPrefs)
	}

	return nil
}
