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

// Package shell is the interactive operator shell of memdisplay. It reads
// commands from a terminal.Input, a line at a time, and prints results to a
// terminal.Output.
//
// The shell keeps a session cursor. The MD command remembers the address,
// word size and byte count of the previous dump so that a bare MD continues
// from where the last one stopped. A memory fault clears the cursor.
//
// Addresses are resolved through an aspace.Registry and all memory access is
// through the fault guarded probe.Accessor. A fault is reported as an error
// and the shell carries on.
package shell
