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

// Package devmem provides address spaces backed by device files. The file is
// mapped into the process with mmap() and the address space is the offset
// into the file. This is how physical memory (/dev/mem), userspace I/O
// devices (/dev/uioN) and PCI resources (/sys/bus/pci/devices/*/resourceN)
// are reached on Linux.
//
// A Device is used as the token of the Handler function when it is installed
// with the aspace package:
//
//	aspace.InstallHandler("mem", devmem.Handler, devmem.NewDevice("/dev/mem"))
//
// Translator resolves strings of the form /<path>:<offset> without the need to
// install a named address space for every file.
//
// Mappings are made a page at a time and are cached until the Device is
// closed.
package devmem
