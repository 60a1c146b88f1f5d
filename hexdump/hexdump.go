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

package hexdump

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/probe"
)

// Sentinal error patterns.
const (
	RenderFault = "hexdump: %v"
)

const rowSize = 16

// Renderer renders memory read through a probe.Bus.
type Renderer struct {
	Bus probe.Bus
}

// Render count bytes of memory at ptr using the Direct bus. See
// Renderer.Render() for details.
func Render(out io.Writer, base uint64, ptr probe.Address, wordSize int, count uint64) (int, error) {
	return Renderer{Bus: probe.Direct}.Render(out, base, ptr, wordSize, count)
}

// Render count bytes of memory at ptr. Base is the address printed for ptr,
// which need not be the same as ptr.
//
// Returns the number of characters written. On error the number of
// characters is -1. Rows already written when a fault occurs remain written.
func (r Renderer) Render(out io.Writer, base uint64, ptr probe.Address, wordSize int, count uint64) (int, error) {
	w, err := probe.LegacyWord(wordSize)
	if err != nil {
		return -1, err
	}

	width := addressWidth(base, count)

	mask := uint64(w.Size - 1)
	ptr -= probe.Address(base & mask)
	base &^= mask

	offset := base &^ (rowSize - 1)
	lead := base & (rowSize - 1)
	size := count + lead
	ptr -= probe.Address(lead)

	var n int
	err = barrier.Run(func() {
		n = r.rows(out, base, offset, ptr, w, width, size)
	})
	if err != nil {
		fmt.Fprintln(out)
		flush(out)
		logger.Logf(logger.Allow, "hexdump", "render of %#x: %v", base, err)
		return -1, curated.Errorf(RenderFault, err)
	}

	return n, nil
}

func (r Renderer) rows(out io.Writer, base uint64, offset uint64, ptr probe.Address, w probe.Word, width int, size uint64) int {
	var n int
	var sidebar [rowSize]byte
	for i := range sidebar {
		sidebar[i] = ' '
	}

	step := uint64(w.Size)

	for i := uint64(0); i < size; i += rowSize {
		c, _ := fmt.Fprintf(out, "%0*x: ", width, offset)
		n += c

		for j := uint64(0); j < rowSize; j += step {
			if offset+j < base || i+j >= size {
				c, _ = fmt.Fprintf(out, "%*c ", 2*w.Size, ' ')
			} else {
				v := r.Bus.Load(ptr, w.Size)
				if w.Swap {
					v = probe.Swap(v, w.Size)
				}
				store(sidebar[j:], v, w.Size)
				c, _ = fmt.Fprintf(out, "%0*x ", 2*w.Size, v)
			}
			n += c
			ptr += probe.Address(w.Size)
		}

		c, _ = io.WriteString(out, "| ")
		n += c

		for j := uint64(0); j < rowSize && i+j < size; j++ {
			ch := sidebar[j]
			if ch < 0x20 || ch > 0x7e {
				ch = '.'
			}
			c, _ = out.Write([]byte{ch})
			n += c
		}

		c, _ = io.WriteString(out, "\n")
		n += c

		offset += rowSize
	}

	return n
}

// the bytes of the word as they would be stored in host order
func store(b []byte, v uint64, size int) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(b, uint32(v))
	case 8:
		binary.NativeEndian.PutUint64(b, v)
	}
}

func addressWidth(base uint64, count uint64) int {
	end := base + count - 1
	switch {
	case end&0xffff000000000000 != 0:
		return 16
	case end&0x0000ffff00000000 != 0:
		return 12
	case end&0x00000000ffff0000 != 0:
		return 8
	}
	return 4
}

func flush(out io.Writer) {
	if f, ok := out.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
