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

package curated_test

import (
	"errors"
	"testing"

	"github.com/memdisplay/memdisplay/curated"
	"github.com/memdisplay/memdisplay/test"
)

const testPattern = "test: value %d"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test: value 10")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "test: %v"))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("fatal: %v", e)

	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectFailure(t, curated.Has(f, "other: %v"))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("probe: memory fault")
	f := curated.Errorf("probe: %v", e)
	g := curated.Errorf("hexdump: %v", f)
	test.ExpectEquality(t, f.Error(), "probe: memory fault")
	test.ExpectEquality(t, g.Error(), "hexdump: probe: memory fault")
}

var errSentinel = errors.New("sentinel")

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("wrapped: %v", errSentinel)
	test.ExpectSuccess(t, errors.Is(e, errSentinel))

	f := curated.Errorf("outer: %v (%d)", e, 5)
	test.ExpectSuccess(t, errors.Is(f, errSentinel))
}
