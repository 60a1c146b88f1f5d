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

// Package aspace resolves address strings to raw pointers.
//
// An address string has the form
//
//	[<space>:]<numeral>
//
// where numeral is anything accepted by the quantity package. If space names
// an installed Handler, the handler is asked for a pointer to the numeric
// address. Handlers are how bus windows, device files and other non-trivial
// address spaces are made available.
//
// Strings that name no handler are offered to each installed Translator in
// turn, then to the SymbolLookup function if there is one. Finally a bare
// numeral is taken to be the address itself.
//
// The string "?" is a request for the list of known address spaces.
//
// Handlers and translators are tried most recently installed first. A handler
// installed with the same name as an existing handler therefore shadows it.
//
// Default is the registry used by the package level functions. Programs that
// need an isolated set of address spaces create their own with NewRegistry().
// Installation is not safe for concurrent use and is expected to happen
// during program initialisation.
package aspace
