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

package terminal

import (
	"bytes"
)

// LineWriter is an io.Writer that sends each complete line written to it to
// an Output with the specified style. Incomplete lines are held until Flush()
// is called or until the line is completed.
type LineWriter struct {
	Output Output
	Style  Style
	buffer bytes.Buffer
}

// NewLineWriter is the preferred method of initialisation for the LineWriter
// type.
func NewLineWriter(output Output, style Style) *LineWriter {
	return &LineWriter{
		Output: output,
		Style:  style,
	}
}

// Write implements the io.Writer interface.
func (lw *LineWriter) Write(p []byte) (int, error) {
	n, _ := lw.buffer.Write(p)
	for {
		i := bytes.IndexByte(lw.buffer.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := lw.buffer.Next(i + 1)
		lw.Output.TermPrintLine(lw.Style, string(line[:i]))
	}
	return n, nil
}

// Flush any incomplete line.
func (lw *LineWriter) Flush() error {
	if lw.buffer.Len() > 0 {
		lw.Output.TermPrintLine(lw.Style, lw.buffer.String())
		lw.buffer.Reset()
	}
	return nil
}
