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

// Package paths prepares paths to memdisplay resources, such as the
// preferences file.
//
// The ResourcePath() function joins the resource with the appropriate base
// directory. For example, the following returns the path to the preferences
// file.
//
//	p, err := paths.ResourcePath("", "preferences")
//
// If a directory called ".memdisplay" is present in the current directory then
// that is the base. Otherwise the base is the memdisplay directory in the
// user's config directory, as returned by os.UserConfigDir(). On a modern
// Linux system the path in the example is:
//
//	/home/user/.config/memdisplay/preferences
package paths
