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

// Package symbols finds the addresses of global variables in the running
// program. The symbol table is read from the executable file, which must be
// an ELF file that has not been stripped.
//
// Addresses in the file are corrected for the address the program was
// loaded at, which will differ from the file for position independent
// executables.
//
// Symbol names are the names used by the linker. For Go variables that is
// the full package path followed by the variable name:
//
//	github.com/memdisplay/memdisplay/symbols.anchor
//
// Lookup() will also accept any unambiguous suffix that starts after a dot or
// a slash, so main.counter or symbols.anchor would be enough.
package symbols
