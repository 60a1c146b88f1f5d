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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/quantity"
)

// Sentinal error patterns.
const (
	CannotSet = "prefs: cannot set %s from %T (%v)"
)

// Value is the Go value of a preference.
type Value interface{}

// pref is implemented by all preference types.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

type hook func(value Value) error

// Bool is a boolean preference.
type Bool struct {
	value    atomic.Bool
	hookPost hook
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set value from a bool or a string. Any string other than "true" or "on"
// sets the value to false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on":
			nv = true
		}
	default:
		return curated.Errorf(CannotSet, "bool", v, v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// SetHookPost sets a function to be called after every Set().
func (p *Bool) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Int is an integer preference. When set from a string, any quantity
// accepted by the quantity package is allowed, with an optional minus sign.
type Int struct {
	value    atomic.Int64
	hookPost hook
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// Set value from an int or a string.
func (p *Int) Set(v Value) error {
	var nv int64
	switch v := v.(type) {
	case int:
		nv = int64(v)
	case int64:
		nv = v
	case string:
		s := strings.TrimSpace(v)
		neg := strings.HasPrefix(s, "-")
		s = strings.TrimPrefix(s, "-")
		n, err := quantity.ParseAll(s)
		if err != nil {
			return curated.Errorf(CannotSet, "int", v, err)
		}
		nv = int64(n)
		if neg {
			nv = -nv
		}
	default:
		return curated.Errorf(CannotSet, "int", v, v)
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(int(nv))
	}
	return nil
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// SetHookPost sets a function to be called after every Set().
func (p *Int) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// String is a string preference.
type String struct {
	value    atomic.Value
	hookPost hook
}

func (p *String) String() string {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

// Set value from any value. The value is formatted with fmt.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	p.value.Store(nv)

	if p.hookPost != nil {
		return p.hookPost(nv)
	}
	return nil
}

// Get returns the value as a string.
func (p *String) Get() Value {
	return p.String()
}

// SetHookPost sets a function to be called after every Set().
func (p *String) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}
