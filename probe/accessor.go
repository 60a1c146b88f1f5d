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

package probe

import (
	"fmt"
	"io"
	"time"

	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/quantity"
)

// Accessor performs guarded operations on raw memory.
type Accessor struct {
	Bus Bus

	// diagnostic output. the throughput report of Copy() is written here. can
	// be nil
	Output io.Writer
}

// NewAccessor is the preferred method of initialisation for the Accessor type.
func NewAccessor(output io.Writer) *Accessor {
	return &Accessor{
		Bus:    Direct,
		Output: output,
	}
}

// Result of a Compare() operation.
type Result struct {
	Match bool

	// byte offset of the first unequal word and the raw values that
	// differed. A is the value as it is in memory, before any swap
	Offset uint64
	A      uint64
	B      uint64
}

func (r Result) String() string {
	if r.Match {
		return "match"
	}
	return fmt.Sprintf("mismatch at offset %#x: %#x != %#x", r.Offset, r.A, r.B)
}

// run action inside a fault barrier and log the failure
func (a *Accessor) guard(op string, p Address, action func()) error {
	err := barrier.Run(action)
	if err != nil {
		logger.Logf(logger.Allow, "probe", "%s at %v: %v", op, p, err)
		return curated.Errorf(AccessFault, err)
	}
	return nil
}

// Read a single word.
func (a *Accessor) Read(p Address, w Word) (uint64, error) {
	if !w.valid() {
		return 0, curated.Errorf(InvalidWordSize, w.Legacy())
	}

	var v uint64
	err := a.guard("read", p, func() {
		v = w.order(a.Bus.Load(p, w.Size))
	})
	if err != nil {
		return 0, err
	}

	return v, nil
}

// Write a single word.
func (a *Accessor) Write(p Address, w Word, v uint64) error {
	if !w.valid() {
		return curated.Errorf(InvalidWordSize, w.Legacy())
	}

	return a.guard("write", p, func() {
		a.Bus.Store(p, w.Size, w.order(v))
	})
}

// FillSize is the word size chosen by Fill() when the size of the Word is
// zero.
func FillSize(pattern uint64) int {
	if pattern&0xffff0000 != 0 {
		return 4
	}
	if pattern&0xff00 != 0 {
		return 2
	}
	return 1
}

// Fill total bytes from p with pattern. The pattern is incremented by
// increment after every word. Any bytes left over after the last whole word
// are not written.
func (a *Accessor) Fill(p Address, pattern uint64, total uint64, w Word, increment uint64) error {
	if w.Size == 0 {
		w.Size = FillSize(pattern)
	}
	if !w.valid() {
		return curated.Errorf(InvalidWordSize, w.Legacy())
	}

	n := total / uint64(w.Size)

	return a.guard("fill", p, func() {
		for i := uint64(0); i < n; i++ {
			a.Bus.Store(p, w.Size, w.order(pattern))
			p += Address(w.Size)
			pattern += increment
		}
	})
}

// Copy total bytes from src to dst. If the size of the Word is zero the copy
// is an unstructured stream of bytes.
//
// On success a summary of the throughput is written to Output.
func (a *Accessor) Copy(src Address, dst Address, total uint64, w Word) error {
	if w.Size != 0 && !w.valid() {
		return curated.Errorf(InvalidWordSize, w.Legacy())
	}

	start := time.Now()

	err := a.guard("copy", src, func() {
		if w.Size == 0 {
			if m, ok := a.Bus.(Mover); ok {
				m.Move(dst, src, total)
				return
			}
			w.Size = 1
		}

		n := total / uint64(w.Size)
		for i := uint64(0); i < n; i++ {
			a.Bus.Store(dst, w.Size, w.order(a.Bus.Load(src, w.Size)))
			src += Address(w.Size)
			dst += Address(w.Size)
		}
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	if a.Output != nil {
		secs := elapsed.Seconds()
		fmt.Fprintf(a.Output, "copied %s bytes in %v: %.2f MiB/s, %.2f MB/s\n",
			quantity.Format(total), elapsed,
			float64(total)/(1<<20)/secs, float64(total)/1e6/secs)
	}

	return nil
}

// Compare total bytes at p and q. Comparison stops at the first unequal word.
// Words from p are swapped if requested and words from q are always in host
// order. If the size of the Word is zero, bytes are compared.
func (a *Accessor) Compare(p Address, q Address, total uint64, w Word) (Result, error) {
	if w.Size == 0 {
		w = Word{Size: 1}
	}
	if !w.valid() {
		return Result{}, curated.Errorf(InvalidWordSize, w.Legacy())
	}

	res := Result{Match: true}
	n := total / uint64(w.Size)

	err := a.guard("compare", p, func() {
		for i := uint64(0); i < n; i++ {
			off := i * uint64(w.Size)
			raw := a.Bus.Load(p+Address(off), w.Size)
			vb := a.Bus.Load(q+Address(off), w.Size)
			if w.order(raw) != vb {
				res = Result{Offset: off, A: raw, B: vb}
				return
			}
		}
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}
