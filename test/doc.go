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

// Package test contains helper functions for the memdisplay test suites.
//
// The Expect*() functions report a failure and let the test continue. The
// Demand*() functions stop the test immediately. Expectations on errors and
// booleans are checked with ExpectSuccess() and ExpectFailure():
//
//	bool -> true is success
//	error -> nil is success
//
// The memory fixtures (unix only) hand out anonymous pages that are not owned
// by the Go garbage collector, so raw addresses taken from them stay valid for
// the duration of the test. GuardedPages() additionally places an
// inaccessible page directly after the readable region, which is how the
// fault handling of the probe, hexdump and barrier packages is exercised.
package test
