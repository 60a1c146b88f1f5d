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

// Package logger is the central log for memdisplay. Packages log through the
// package level Log() and Logf() functions. The log is kept in memory, up to
// a maximum number of entries, and can be written out on demand (the shell
// LOG command) or echoed as it is written (the -log command line flag).
//
// Every call to Log() takes a Permission. Logging only happens if the
// permission allows it. The Allow value always allows logging. Packages with
// optional diagnostic output, like the barrier package, export a Permission
// value that can be switched on and off at runtime.
//
// Consecutive identical entries are folded into a single entry with a repeat
// count.
package logger
