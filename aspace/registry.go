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

package aspace

import (
	"fmt"
	"strings"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/probe"
	"github.com/memdisplay/memdisplay/quantity"
)

// Sentinal error patterns.
const (
	UnknownAddressSpace = "aspace: unknown address %s (known spaces: %s)"
	ResolutionFailure   = "aspace: address %#x in %s address space failed: %v"
	InvalidAddress      = "aspace: invalid address (%s)"
	AddressTooLarge     = "aspace: address too large (%s)"
	HelpRequested       = "aspace: known address spaces: %s"
	InvalidHandler      = "aspace: invalid handler (%s)"
)

// Handler returns a pointer to addr in the address space. Size is the number
// of bytes that the caller intends to access. Token is the value given to
// InstallHandler().
//
// A Handler indicates failure by returning an error.
type Handler func(addr uint64, size uint64, token any) (probe.Address, error)

// Translator is offered address strings that do not name a handler. Raw is
// the complete address string and offset is the running offset, which the
// translator adds to whatever address it parses from raw.
type Translator func(raw string, offset uint64, size uint64) (probe.Address, bool)

// SymbolLookup returns the address of a named global variable.
type SymbolLookup func(name string) (uintptr, bool)

// Resolved is the result of a successful Resolve().
type Resolved struct {
	Ptr  probe.Address
	Addr uint64

	// name of the handler that resolved the address. empty if no handler was
	// involved
	Space string
}

func (r Resolved) String() string {
	if r.Space == "" {
		return fmt.Sprintf("%#x", r.Addr)
	}
	return fmt.Sprintf("%s:%#x (%v)", r.Space, r.Addr, r.Ptr)
}

type handlerEntry struct {
	name    string
	handler Handler
	token   any
	next    *handlerEntry
}

type translatorEntry struct {
	translator Translator
	next       *translatorEntry
}

// Registry of address spaces.
type Registry struct {
	handlers    *handlerEntry
	translators *translatorEntry

	// consulted for strings that are not claimed by a handler or translator.
	// can be nil
	Symbols SymbolLookup
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{}
}

// InstallHandler adds a named address space.
func (r *Registry) InstallHandler(name string, handler Handler, token any) error {
	if name == "" {
		return curated.Errorf(InvalidHandler, "empty name")
	}
	if strings.ContainsAny(name, ": \t") {
		return curated.Errorf(InvalidHandler, name)
	}
	if handler == nil {
		return curated.Errorf(InvalidHandler, name)
	}

	r.handlers = &handlerEntry{
		name:    name,
		handler: handler,
		token:   token,
		next:    r.handlers,
	}

	logger.Logf(logger.Allow, "aspace", "installed %s address space", name)
	return nil
}

// InstallTranslator adds a translator.
func (r *Registry) InstallTranslator(translator Translator) error {
	if translator == nil {
		return curated.Errorf(InvalidHandler, "nil translator")
	}

	r.translators = &translatorEntry{
		translator: translator,
		next:       r.translators,
	}

	return nil
}

// Names of the installed address spaces, most recently installed first.
func (r *Registry) Names() []string {
	var names []string
	for h := r.handlers; h != nil; h = h.next {
		names = append(names, h.name)
	}
	return names
}

// Usage is a description of the address syntax and the known address spaces.
func (r *Registry) Usage() string {
	var s strings.Builder
	s.WriteString("address syntax: [<space>:]<address>\n")
	s.WriteString("known address spaces:")
	names := r.Names()
	if len(names) == 0 {
		s.WriteString(" none")
	}
	for _, n := range names {
		s.WriteString(" ")
		s.WriteString(n)
	}
	return s.String()
}

func (r *Registry) names() string {
	names := r.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

const maxAddress = uint64(^uintptr(0))

// numeric part of an address string, plus offset. the whole string must be
// consumed
func (r *Registry) numeral(s string, offset uint64) (uint64, error) {
	v, n := quantity.Parse(s)
	if n != len(s) {
		return 0, curated.Errorf(InvalidAddress, s)
	}
	return add(s, v, offset)
}

func add(s string, v uint64, offset uint64) (uint64, error) {
	if v > maxAddress || offset > maxAddress-v {
		return 0, curated.Errorf(AddressTooLarge, s)
	}
	return v + offset, nil
}

// Resolve an address string. The offset is added to the numeric address
// before the address space is consulted. Size is the number of bytes the
// caller intends to access.
func (r *Registry) Resolve(s string, offset uint64, size uint64) (Resolved, error) {
	s = strings.TrimSpace(s)

	if s == "?" {
		return Resolved{}, curated.Errorf(HelpRequested, r.names())
	}

	for h := r.handlers; h != nil; h = h.next {
		rest, ok := strings.CutPrefix(s, h.name)
		if !ok {
			continue
		}

		var addr uint64
		var err error

		switch {
		case rest == "":
			addr, err = add(s, 0, offset)
		case rest[0] == ':':
			addr, err = r.numeral(rest[1:], offset)
		default:
			continue
		}
		if err != nil {
			return Resolved{}, err
		}

		ptr, err := h.handler(addr, size, h.token)
		if err != nil {
			logger.Logf(logger.Allow, "aspace", "%s: %v", s, err)
			return Resolved{}, curated.Errorf(ResolutionFailure, addr, h.name, err)
		}

		return Resolved{Ptr: ptr, Addr: addr, Space: h.name}, nil
	}

	if r.translators != nil {
		// address reported in Resolved. the translator parses raw itself
		var addr uint64
		if i := strings.LastIndexByte(s, ':'); i >= 0 {
			addr, _ = quantity.Parse(s[i+1:])
		}
		addr += offset

		for t := r.translators; t != nil; t = t.next {
			if ptr, ok := t.translator(s, offset, size); ok {
				return Resolved{Ptr: ptr, Addr: addr}, nil
			}
		}
	}

	if r.Symbols != nil {
		if p, ok := r.Symbols(s); ok {
			addr := uint64(p) + offset
			return Resolved{Ptr: probe.Address(addr), Addr: addr}, nil
		}
	}

	v, n := quantity.Parse(s)
	if n == 0 {
		return Resolved{}, curated.Errorf(UnknownAddressSpace, s, r.names())
	}
	if n != len(s) {
		return Resolved{}, curated.Errorf(InvalidAddress, s)
	}

	addr, err := add(s, v, offset)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{Ptr: probe.Address(addr), Addr: addr}, nil
}
