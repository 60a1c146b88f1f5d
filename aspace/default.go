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

// Default is the process wide registry.
var Default = NewRegistry()

// InstallHandler adds a named address space to the Default registry.
func InstallHandler(name string, handler Handler, token any) error {
	return Default.InstallHandler(name, handler, token)
}

// InstallTranslator adds a translator to the Default registry.
func InstallTranslator(translator Translator) error {
	return Default.InstallTranslator(translator)
}

// Resolve an address string with the Default registry.
func Resolve(s string, offset uint64, size uint64) (Resolved, error) {
	return Default.Resolve(s, offset, size)
}

// Names of the address spaces in the Default registry.
func Names() []string {
	return Default.Names()
}
