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

// Package modalflag handles command lines made up of modes, each with their
// own flags. It is a thin layer over the flag package.
//
//	memdisplay -term COLOR SHELL -script startup.md
//	memdisplay DUMP -word -4 mem:0xfe000000 0x100
//
// Arguments are given to NewArgs() and each layer is then handled with a
// call to Parse(). Between calls to Parse(), NewMode() starts a new layer with
// its own flags and, optionally, a list of sub-modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SHELL", "DUMP", "VERSION")
//	term := md.AddString("term", "PLAIN", "terminal type")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected when the first
// argument after the flags is not a sub-mode. Sub-mode names are case
// insensitive and are always reported in upper case.
//
// A -help flag is recognised at every layer and prints the flags and
// sub-modes of that layer to the Output writer.
package modalflag
