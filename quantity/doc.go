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

// Package quantity parses and formats the magnitude strings used for byte
// counts and addresses throughout memdisplay.
//
// A quantity is a series of numerals, each optionally followed by a single
// letter magnitude suffix. Numerals follow the usual integer literal rules:
// a 0x prefix is hexadecimal, a leading 0 is octal and anything else is
// decimal. The suffixes are case insensitive:
//
//	K  2^10
//	M  2^20
//	G  2^30
//	T  2^40
//	P  2^50
//	E  2^60
//
// The values of all the groups are summed, so "1K512" is 1536 and "2M" is
// 2097152.
//
// Format() is the inverse. It prints the value in hex followed by the
// decomposition into magnitudes, for example "0x1400=5K" and "0x0=0".
package quantity
