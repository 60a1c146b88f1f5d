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

package symbols

import (
	"debug/elf"
	"os"
	"sort"
	"strings"
	"unsafe"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
)

// Sentinal error patterns.
const (
	LoadFailure = "symbols: %v"
)

// the address of anchor in memory and in the file give the load offset
var anchor uint64

const anchorName = "github.com/memdisplay/memdisplay/symbols.anchor"

// Symbol is a single entry in the Table.
type Symbol struct {
	Name    string
	Address uintptr
	Size    uint64
}

// Table of data symbols.
type Table struct {
	byName  map[string]Symbol
	ordered []Symbol
}

// Load the symbol table of the running program.
func Load() (*Table, error) {
	fn, err := os.Executable()
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}

	f, err := elf.Open(fn)
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}
	defer f.Close()

	syms, err := f.Symbols()
	if err != nil {
		return nil, curated.Errorf(LoadFailure, err)
	}

	tbl := &Table{
		byName: make(map[string]Symbol),
	}

	var slide uintptr
	var anchored bool

	for _, s := range syms {
		if elf.ST_TYPE(s.Info) != elf.STT_OBJECT || s.Value == 0 {
			continue
		}
		if s.Name == anchorName {
			slide = uintptr(unsafe.Pointer(&anchor)) - uintptr(s.Value)
			anchored = true
		}
		tbl.ordered = append(tbl.ordered, Symbol{
			Name:    s.Name,
			Address: uintptr(s.Value),
			Size:    s.Size,
		})
	}

	if !anchored {
		return nil, curated.Errorf(LoadFailure, "load address cannot be determined")
	}

	for i := range tbl.ordered {
		tbl.ordered[i].Address += slide
		tbl.byName[tbl.ordered[i].Name] = tbl.ordered[i]
	}

	sort.Slice(tbl.ordered, func(i, j int) bool {
		return tbl.ordered[i].Name < tbl.ordered[j].Name
	})

	logger.Logf(logger.Allow, "symbols", "%d symbols loaded from %s", len(tbl.ordered), fn)

	return tbl, nil
}

// Len returns the number of symbols in the table.
func (tbl *Table) Len() int {
	if tbl == nil {
		return 0
	}
	return len(tbl.ordered)
}

// Lookup is suitable for use as an aspace.SymbolLookup function.
func (tbl *Table) Lookup(name string) (uintptr, bool) {
	if tbl == nil {
		return 0, false
	}

	if s, ok := tbl.byName[name]; ok {
		return s.Address, true
	}

	var found *Symbol
	for i := range tbl.ordered {
		s := &tbl.ordered[i]
		if !suffix(s.Name, name) {
			continue
		}
		if found != nil {
			// ambiguous
			return 0, false
		}
		found = s
	}

	if found == nil {
		return 0, false
	}

	return found.Address, true
}

func suffix(full string, name string) bool {
	if !strings.HasSuffix(full, name) || len(full) == len(name) {
		return false
	}
	c := full[len(full)-len(name)-1]
	return c == '.' || c == '/'
}

// Search returns all symbols that contain the search string. Matching is
// case-insensitive.
func (tbl *Table) Search(search string) []Symbol {
	if tbl == nil {
		return nil
	}

	search = strings.ToLower(search)

	var res []Symbol
	for _, s := range tbl.ordered {
		if strings.Contains(strings.ToLower(s.Name), search) {
			res = append(res, s)
		}
	}

	return res
}
