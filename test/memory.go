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

//go:build unix

package test

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Pages is a block of anonymous memory mapped outside of the Go heap.
type Pages struct {
	// the accessible part of the mapping
	Data []byte

	// address of the first byte of Data
	Base uintptr

	// address of the first inaccessible byte. zero if there is no guard
	Guard uintptr

	mapping []byte
}

// Addr returns the address of the byte at offset in Data.
func (p *Pages) Addr(offset int) uintptr {
	return p.Base + uintptr(offset)
}

// MapPages maps n read/write pages. The mapping is released when the test
// ends.
func MapPages(t *testing.T, n int) *Pages {
	t.Helper()
	return mapPages(t, n, false)
}

// GuardedPages maps n read/write pages followed by a single page with no
// access rights. Any access to Guard faults.
func GuardedPages(t *testing.T, n int) *Pages {
	t.Helper()
	return mapPages(t, n, true)
}

func mapPages(t *testing.T, n int, guard bool) *Pages {
	t.Helper()

	if n < 1 {
		t.Fatalf("cannot map %d pages", n)
	}

	sz := unix.Getpagesize()
	total := n * sz
	if guard {
		total += sz
	}

	m, err := unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		t.Fatalf("mmap: %v", err)
	}
	t.Cleanup(func() {
		if err := unix.Munmap(m); err != nil {
			t.Errorf("munmap: %v", err)
		}
	})

	p := &Pages{
		Data:    m[:n*sz],
		Base:    uintptr(unsafe.Pointer(&m[0])),
		mapping: m,
	}

	if guard {
		if err := unix.Mprotect(m[n*sz:], unix.PROT_NONE); err != nil {
			t.Fatalf("mprotect: %v", err)
		}
		p.Guard = p.Base + uintptr(n*sz)
	}

	return p
}
