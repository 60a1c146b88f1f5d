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

// Package script replays shell commands from a file. In this package we refer
// to this as rescribing.
//
// Scripts are handwritten, one command per line. Lines beginning with the #
// symbol are comments and blank lines are ignored. Invalid commands are not
// detected until they are replayed, at which point the shell will print the
// appropriate error message and carry on with the next line.
//
// The Rescribe type satisfies terminal.Input and is used as the source of
// commands by the shell input loop.
package script
