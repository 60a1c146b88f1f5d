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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/memdisplay/memdisplay/aspace"
	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/devmem"
	"github.com/memdisplay/memdisplay/hexdump"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/modalflag"
	"github.com/memdisplay/memdisplay/paths"
	"github.com/memdisplay/memdisplay/performance"
	"github.com/memdisplay/memdisplay/quantity"
	"github.com/memdisplay/memdisplay/shell"
	"github.com/memdisplay/memdisplay/statsview"
	"github.com/memdisplay/memdisplay/symbols"
	"github.com/memdisplay/memdisplay/terminal"
	"github.com/memdisplay/memdisplay/terminal/colorterm"
	"github.com/memdisplay/memdisplay/terminal/plainterm"
	"github.com/memdisplay/memdisplay/version"
	"golang.org/x/term"
)

const defaultPrefsFile = "preferences"

// the physical memory address space is always installed
const (
	memSpace  = "mem"
	memDevice = "/dev/mem"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("SHELL", "DUMP", "SPACES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "SHELL":
		err = shellMode(md, output)

	case "DUMP":
		err = dump(md, output)

	case "SPACES":
		err = spaces(md, output)

	case "VERSION":
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

type spaceArg struct {
	name string
	path string
}

// environment is the set of flags shared by all modes that access memory
type environment struct {
	log    *bool
	debug  *bool
	spaces []spaceArg

	devices []*devmem.Device
}

func addEnvironment(md *modalflag.Modes) *environment {
	env := &environment{}
	env.log = md.AddBool("log", false, "echo log to stderr")
	env.debug = md.AddBool("debug", false, "log fault barrier activity")
	md.AddFunc("space", "add address space mapping a device file: name=path (can be repeated)", func(s string) error {
		name, path, ok := strings.Cut(s, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("address space should be name=path (%s)", s)
		}
		env.spaces = append(env.spaces, spaceArg{name: name, path: path})
		return nil
	})
	return env
}

// install the physical memory space, the spaces named on the command line and
// the device file translator in the default registry. global symbols of the
// program are also made available
func (env *environment) registry() (*aspace.Registry, *symbols.Table, error) {
	if *env.log {
		logger.SetEcho(os.Stderr)
	}
	barrier.Debug.Set(*env.debug)

	r := aspace.Default

	install := func(name string, path string) error {
		dev := devmem.NewDevice(path)
		env.devices = append(env.devices, dev)
		return aspace.InstallHandler(name, devmem.Handler, dev)
	}

	if err := install(memSpace, memDevice); err != nil {
		return nil, nil, err
	}
	for _, s := range env.spaces {
		if err := install(s.name, s.path); err != nil {
			return nil, nil, err
		}
	}

	if err := aspace.InstallTranslator(devmem.Translator); err != nil {
		return nil, nil, err
	}

	tbl, err := symbols.Load()
	if err != nil {
		logger.Log(logger.Allow, "memdisplay", err)
	} else {
		r.Symbols = tbl.Lookup
	}

	return r, tbl, nil
}

func (env *environment) cleanUp() {
	for _, dev := range env.devices {
		if err := dev.Close(); err != nil {
			logger.Log(logger.Allow, "memdisplay", err)
		}
	}
	devmem.CloseTranslated()
}

func shellMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvironment(md)
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")
	prefsFile := md.AddString("prefs", "", "preferences file (default is in the config directory)")
	initScript := md.AddString("script", "", "script to run on startup")
	stats := md.AddBool("statsview", false, "run stats server")
	profile := md.AddString("profile", "NONE", "run shell through profiler: CPU, MEM, TRACE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	r, tbl, err := env.registry()
	if err != nil {
		return err
	}
	defer env.cleanUp()

	if *prefsFile == "" {
		*prefsFile, err = paths.ResourcePath("", defaultPrefsFile)
		if err != nil {
			return err
		}
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
			defer statsview.Stop()
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	var t terminal.Terminal

	// the color terminal requires a real terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		*termType = "PLAIN"
	}

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		t = plainterm.NewPlainTerminal(os.Stdin, output)
	case "COLOR":
		t = &colorterm.ColorTerminal{}
	}

	sh, err := shell.NewShell(t, r, *prefsFile)
	if err != nil {
		return err
	}
	sh.SetSymbols(tbl)

	return performance.RunProfiler(prf, "shell", func() error {
		return sh.Run(*initScript)
	})
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("DUMP <address> [<wordsize>] [<bytes>]")

	env := addEnvironment(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	if len(args) == 0 {
		return fmt.Errorf("address required for %s mode", md)
	}
	if len(args) > 3 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	wordSize := 2
	if len(args) > 1 {
		wordSize, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("word size: %w", err)
		}
	}

	count := uint64(0x80)
	if len(args) > 2 {
		count, err = quantity.ParseAll(args[2])
		if err != nil {
			return err
		}
	}

	_, _, err = env.registry()
	if err != nil {
		return err
	}
	defer env.cleanUp()

	res, err := aspace.Resolve(args[0], 0, count)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(output)
	_, err = hexdump.Render(w, res.Addr, res.Ptr, wordSize, count)
	if ferr := w.Flush(); err == nil {
		err = ferr
	}

	return err
}

func spaces(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvironment(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	r, _, err := env.registry()
	if err != nil {
		return err
	}
	defer env.cleanUp()

	fmt.Fprintln(output, r.Usage())

	return nil
}
