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

// Package curated wraps the Go error type with pattern based errors. Every
// package in memdisplay that reports an expected failure does so through this
// package.
//
// Errors are created with Errorf(). The pattern argument doubles as the
// identity of the error and is normally stored as an exported const in the
// package that raises it:
//
//	const InvalidWordSize = "probe: invalid word size (%d)"
//
//	err := curated.Errorf(InvalidWordSize, 3)
//
//	if curated.Is(err, InvalidWordSize) {
//		...
//	}
//
// Has() searches the whole chain, so a caller can check for a fault that was
// wrapped by an intermediate package:
//
//	err := curated.Errorf("hexdump: %v", curated.Errorf(probe.AccessFault, f))
//	curated.Has(err, probe.AccessFault) == true
//
// Curated errors that wrap other error values also implement the multi-error
// Unwrap() method, so errors.Is() and errors.As() from the standard library
// see through them. This is how the shell finds the *barrier.Fault at the
// bottom of a chain.
//
// The message returned by Error() is normalised. Adjacent duplicate parts
// of the chain (parts being separated by ": ") are collapsed, so that
// wrapping an error with the same prefix at several levels does not produce
// "probe: probe: memory fault".
package curated
