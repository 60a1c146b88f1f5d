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

package barrier

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/memdisplay/memdisplay/logger"
)

// ErrNested is returned by Run() if a barrier is already armed.
var ErrNested = errors.New("barrier: fault barrier already armed")

// Debug controls the logging of arm/disarm events. Off by default.
var Debug logger.Switch

// Fault is returned by Run() when the function it was running caused a
// memory fault.
type Fault struct {
	// the address reported by the operating system, if available
	Addr    uintptr
	HasAddr bool

	// the runtime error that was recovered
	Cause error
}

func (f *Fault) Error() string {
	if f.HasAddr {
		return fmt.Sprintf("memory fault at address %#x", f.Addr)
	}
	return "memory fault"
}

func (f *Fault) Unwrap() error {
	return f.Cause
}

var armed atomic.Bool

// Armed returns true if a barrier is currently active.
func Armed() bool {
	return armed.Load()
}

// Run the function with the fault trap armed. Returns nil if the function
// completed, *Fault if it was interrupted by a memory fault and ErrNested if
// another barrier is already armed.
func Run(action func()) (err error) {
	if !armed.CompareAndSwap(false, true) {
		return ErrNested
	}
	defer armed.Store(false)

	prev := debug.SetPanicOnFault(true)
	logger.Logf(&Debug, "barrier", "armed (previous trap %v)", prev)

	defer func() {
		debug.SetPanicOnFault(prev)
		logger.Log(&Debug, "barrier", "disarmed")

		r := recover()
		if r == nil {
			return
		}

		f, ok := fault(r)
		if !ok {
			panic(r)
		}

		logger.Logf(&Debug, "barrier", "caught: %v", f)
		err = f
	}()

	action()

	return nil
}

// the runtime reports a fault with a runtime.Error. faults at addresses
// outside the zero page carry the address.
func fault(r any) (*Fault, bool) {
	rerr, ok := r.(runtime.Error)
	if !ok {
		return nil, false
	}

	if !strings.Contains(rerr.Error(), "invalid memory address") {
		return nil, false
	}

	f := &Fault{Cause: rerr}
	if a, ok := rerr.(interface{ Addr() uintptr }); ok {
		f.Addr = a.Addr()
		f.HasAddr = true
	}

	return f, true
}
