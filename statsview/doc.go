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

// Package statsview serves runtime statistics of the program over HTTP. The
// server is only available when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() does nothing.
//
// Once launched, graphs are served at localhost:12600/debug/statsview and the
// standard pprof endpoints at localhost:12600/debug/pprof/. Useful when
// watching the memory cost of large COPY and FILL operations.
package statsview
