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

// Package prefs stores preferences on disk. Each preference is a Bool, Int or
// String added to a Disk under a key. The file format is line oriented:
//
//	key :: value
//
// The first line of the file is a warning that the file is generated by the
// program. Entries in the file for keys that have not been added to the Disk
// are preserved when the Disk is saved, so more than one part of the program
// can share the same file.
package prefs
