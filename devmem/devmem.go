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

package devmem

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unsafe"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/logger"
	"github.com/memdisplay/memdisplay/probe"
	"github.com/memdisplay/memdisplay/quantity"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	DeviceError = "devmem: %s: %v"
	NotDevice   = "devmem: token is not a device (%T)"
)

type window struct {
	offset uint64
	data   []byte
}

// Device is a file that can be mapped into memory.
type Device struct {
	Path string

	crit     sync.Mutex
	file     *os.File
	readOnly bool
	windows  []window
}

// NewDevice is the preferred method of initialisation for the Device type. The
// file is not opened until the first mapping is requested.
func NewDevice(path string) *Device {
	return &Device{Path: path}
}

func (dev *Device) String() string {
	return dev.Path
}

func (dev *Device) open() error {
	if dev.file != nil {
		return nil
	}

	f, err := os.OpenFile(dev.Path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		f, err = os.OpenFile(dev.Path, os.O_RDONLY|os.O_SYNC, 0)
		if err != nil {
			return err
		}
		dev.readOnly = true
		logger.Logf(logger.Allow, "devmem", "%s opened read-only", dev.Path)
	}

	dev.file = f
	return nil
}

// Map returns the address in the process of offset in the file. Size bytes
// from that address will be accessible.
func (dev *Device) Map(offset uint64, size uint64) (probe.Address, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if size == 0 {
		size = 1
	}

	for _, w := range dev.windows {
		if offset >= w.offset && offset-w.offset+size <= uint64(len(w.data)) {
			return addressOf(w, offset), nil
		}
	}

	if err := dev.open(); err != nil {
		return 0, curated.Errorf(DeviceError, dev.Path, err)
	}

	page := uint64(unix.Getpagesize())
	start := offset &^ (page - 1)
	length := (offset - start + size + page - 1) &^ (page - 1)

	prot := unix.PROT_READ | unix.PROT_WRITE
	if dev.readOnly {
		prot = unix.PROT_READ
	}

	data, err := unix.Mmap(int(dev.file.Fd()), int64(start), int(length), prot, unix.MAP_SHARED)
	if err != nil {
		return 0, curated.Errorf(DeviceError, dev.Path, fmt.Errorf("mmap %s at %#x: %w", quantity.Format(length), start, err))
	}

	w := window{offset: start, data: data}
	dev.windows = append(dev.windows, w)
	logger.Logf(logger.Allow, "devmem", "%s: mapped %#x bytes at %#x", dev.Path, length, start)

	return addressOf(w, offset), nil
}

func addressOf(w window, offset uint64) probe.Address {
	return probe.Address(uintptr(unsafe.Pointer(&w.data[0])) + uintptr(offset-w.offset))
}

// Close releases all mappings and the file. Addresses returned by Map() are
// no longer valid. The Device can be used again after it has been closed.
func (dev *Device) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	var err error
	for _, w := range dev.windows {
		if e := unix.Munmap(w.data); e != nil && err == nil {
			err = e
		}
	}
	dev.windows = dev.windows[:0]

	if dev.file != nil {
		if e := dev.file.Close(); e != nil && err == nil {
			err = e
		}
		dev.file = nil
	}

	if err != nil {
		return curated.Errorf(DeviceError, dev.Path, err)
	}
	return nil
}

// Handler is an aspace.Handler. The token must be a *Device.
func Handler(addr uint64, size uint64, token any) (probe.Address, error) {
	dev, ok := token.(*Device)
	if !ok {
		return 0, curated.Errorf(NotDevice, token)
	}
	return dev.Map(addr, size)
}

var (
	translated     = make(map[string]*Device)
	translatedCrit sync.Mutex
)

// Translator is an aspace.Translator for strings of the form
// /<path>:<offset>.
func Translator(raw string, offset uint64, size uint64) (probe.Address, bool) {
	if !strings.HasPrefix(raw, "/") {
		return 0, false
	}

	i := strings.LastIndexByte(raw, ':')
	if i < 0 {
		return 0, false
	}
	path := raw[:i]
	addr, _ := quantity.Parse(raw[i+1:])
	addr += offset

	translatedCrit.Lock()
	dev, ok := translated[path]
	if !ok {
		dev = NewDevice(path)
		translated[path] = dev
	}
	translatedCrit.Unlock()

	p, err := dev.Map(addr, size)
	if err != nil {
		logger.Logf(logger.Allow, "devmem", "%v", err)
		return 0, false
	}

	return p, true
}

// CloseTranslated closes all devices opened by Translator().
func CloseTranslated() {
	translatedCrit.Lock()
	defer translatedCrit.Unlock()

	for path, dev := range translated {
		if err := dev.Close(); err != nil {
			logger.Log(logger.Allow, "devmem", err)
		}
		delete(translated, path)
	}
}
