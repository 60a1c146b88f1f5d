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

//go:build !unix

package devmem

import (
	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/probe"
)

// Sentinal error patterns.
const (
	DeviceError = "devmem: %s: %v"
	NotDevice   = "devmem: token is not a device (%T)"
)

// Device is a file that can be mapped into memory. Mapping is not supported on
// this platform.
type Device struct {
	Path string
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(path string) *Device {
	return &Device{Path: path}
}

func (dev *Device) String() string {
	return dev.Path
}

// Map always fails on this platform.
func (dev *Device) Map(offset uint64, size uint64) (probe.Address, error) {
	return 0, curated.Errorf(DeviceError, dev.Path, "not supported on this platform")
}

// Close does nothing on this platform.
func (dev *Device) Close() error {
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

// Translator never claims an address on this platform.
func Translator(raw string, offset uint64, size uint64) (probe.Address, bool) {
	return 0, false
}

// CloseTranslated does nothing on this platform.
func CloseTranslated() {
}
