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
	"math/bits"
	"unsafe"
)

// Address is a location in the address space of the process. Memory at an
// Address is observed, never owned.
type Address uintptr

func (a Address) String() string {
	return fmt.Sprintf("%#x", uintptr(a))
}

// Bus is the means by which memory is accessed. Size is always one of 1, 2, 4
// or 8. Values are in host byte order.
type Bus interface {
	Load(addr Address, size int) uint64
	Store(addr Address, size int, v uint64)
}

// Mover is implemented by a Bus that can copy an unstructured stream of bytes
// more efficiently than one byte at a time.
type Mover interface {
	Move(dst Address, src Address, n uint64)
}

type direct struct{}

// Direct accesses memory by dereferencing the address.
var Direct Bus = direct{}

// the pointer conversions happen here and nowhere else

func (direct) Load(addr Address, size int) uint64 {
	p := unsafe.Pointer(uintptr(addr))
	switch size {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	case 8:
		return *(*uint64)(p)
	}
	panic(fmt.Sprintf("probe: bus load of unsupported size (%d)", size))
}

func (direct) Store(addr Address, size int, v uint64) {
	p := unsafe.Pointer(uintptr(addr))
	switch size {
	case 1:
		*(*uint8)(p) = uint8(v)
	case 2:
		*(*uint16)(p) = uint16(v)
	case 4:
		*(*uint32)(p) = uint32(v)
	case 8:
		*(*uint64)(p) = v
	default:
		panic(fmt.Sprintf("probe: bus store of unsupported size (%d)", size))
	}
}

func (direct) Move(dst Address, src Address, n uint64) {
	if n == 0 {
		return
	}
	d := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(dst))), n)
	s := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(src))), n)
	copy(d, s)
}

// Swap reverses the order of the lower size bytes of v.
func Swap(v uint64, size int) uint64 {
	switch size {
	case 2:
		return uint64(bits.ReverseBytes16(uint16(v)))
	case 4:
		return uint64(bits.ReverseBytes32(uint32(v)))
	case 8:
		return bits.ReverseBytes64(v)
	}
	return v & 0xff
}
