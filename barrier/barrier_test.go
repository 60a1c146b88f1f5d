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

package barrier_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"
	"unsafe"

	"github.com/memdisplay/memdisplay/barrier"
	"github.com/memdisplay/memdisplay/test"
	"golang.org/x/sys/unix"
)

// loads stored here cannot be removed by the compiler
var sink byte

func load(addr uintptr) byte {
	return *(*byte)(unsafe.Pointer(addr))
}

func TestNoFault(t *testing.T) {
	p := test.MapPages(t, 1)
	p.Data[10] = 0x55

	var v byte
	err := barrier.Run(func() {
		v = load(p.Addr(10))
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0x55))
	test.ExpectFailure(t, barrier.Armed())
}

func TestGuardPage(t *testing.T) {
	p := test.GuardedPages(t, 1)

	// access immediately before the guard is fine
	err := barrier.Run(func() {
		sink = load(p.Guard - 1)
	})
	test.ExpectSuccess(t, err)

	err = barrier.Run(func() {
		sink = load(p.Guard + 8)
	})
	test.DemandFailure(t, err)

	var f *barrier.Fault
	test.DemandSuccess(t, errors.As(err, &f))
	test.ExpectSuccess(t, f.HasAddr)
	test.ExpectEquality(t, f.Addr, p.Guard+8)
	test.ExpectFailure(t, barrier.Armed())

	// the process survived and can fault again
	err = barrier.Run(func() {
		sink = load(p.Guard)
	})
	test.ExpectFailure(t, err)
}

func TestBusError(t *testing.T) {
	// mapping an empty file succeeds but touching the mapping raises SIGBUS
	fn := filepath.Join(t.TempDir(), "empty")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	m, err := unix.Mmap(int(f.Fd()), 0, unix.Getpagesize(), unix.PROT_READ, unix.MAP_SHARED)
	test.DemandSuccess(t, err)
	defer unix.Munmap(m)

	err = barrier.Run(func() {
		sink = m[0]
	})
	test.DemandFailure(t, err)

	var flt *barrier.Fault
	test.DemandSuccess(t, errors.As(err, &flt))
	test.ExpectFailure(t, barrier.Armed())

	// the same mapping read through an address
	err = barrier.Run(func() {
		sink = load(uintptr(unsafe.Pointer(&m[0])))
	})
	test.ExpectFailure(t, err)
}

func TestTrapRestored(t *testing.T) {
	prev := debug.SetPanicOnFault(false)
	defer debug.SetPanicOnFault(prev)

	p := test.GuardedPages(t, 1)
	_ = barrier.Run(func() {
		sink = load(p.Guard)
	})

	// the trap was off before Run() so it should be off again now
	test.ExpectFailure(t, debug.SetPanicOnFault(false))
}

func TestNested(t *testing.T) {
	var inner error
	ran := false

	err := barrier.Run(func() {
		test.ExpectSuccess(t, barrier.Armed())
		inner = barrier.Run(func() {
			ran = true
		})
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, errors.Is(inner, barrier.ErrNested))
	test.ExpectFailure(t, ran)

	// a barrier can be armed again once the first has finished
	err = barrier.Run(func() {})
	test.ExpectSuccess(t, err)
}

func TestOtherPanic(t *testing.T) {
	defer func() {
		r := recover()
		test.ExpectEquality(t, r, any("not a fault"))
		test.ExpectFailure(t, barrier.Armed())
	}()

	_ = barrier.Run(func() {
		panic("not a fault")
	})

	t.Errorf("panic was swallowed")
}

func TestIndexPanic(t *testing.T) {
	// runtime errors that are not memory faults are not converted
	defer func() {
		r := recover()
		test.ExpectInequality(t, r, nil)
	}()

	var s []int
	i := 3
	_ = barrier.Run(func() {
		_ = s[i]
	})

	t.Errorf("panic was swallowed")
}
