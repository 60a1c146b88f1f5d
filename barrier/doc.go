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

// Package barrier converts invalid memory accesses into ordinary errors.
//
// Run() executes a function with the fault trap armed. If the function touches
// memory that is unmapped, protected or that the bus refuses to answer for
// (SIGSEGV or SIGBUS) the function is abandoned and Run() returns a *Fault
// describing the faulting address, instead of the process being terminated.
//
//	err := barrier.Run(func() {
//		v = *(*uint32)(unsafe.Pointer(addr))
//	})
//	var f *barrier.Fault
//	if errors.As(err, &f) {
//		...
//	}
//
// The trap is runtime/debug.SetPanicOnFault(), which is scoped to the calling
// goroutine. The function passed to Run() must therefore do its memory access
// on the same goroutine. The previous trap setting is restored on every exit
// path, including the faulting one.
//
// Known limitations:
//
// Only one barrier may be armed at a time, process wide. Calling Run() while
// another barrier is armed, from the same goroutine or another, returns
// ErrNested without running the function. There is no support for nesting.
//
// There is no timeout. A bus that stalls instead of faulting will hang the
// caller and there is no way to cancel the operation.
//
// Faults in non-Go code (cgo) cannot be intercepted and will still terminate
// the process.
//
// Panics that are not memory faults are not swallowed. They continue after the
// trap state has been restored.
package barrier
