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

// Package hexdump renders a region of raw memory as an aligned listing of hex
// words with a printable character sidebar.
//
//	0000: 0100 0302 0504 0706 0908 0b0a 0d0c 0f0e | ................
//
// The width of the address column depends on the last address to be listed:
// four digits if it fits in 16 bits, then eight, twelve and sixteen digits.
//
// The word size is given in the signed form accepted by probe.LegacyWord(). A
// negative size byte swaps each word before it is printed. The sidebar shows
// the bytes of each word after any swapping.
//
// The start of the region is rounded down to the word size, and the listing
// starts on a 16 byte boundary. Words before the start of the region are
// left blank.
package hexdump
