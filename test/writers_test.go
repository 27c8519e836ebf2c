// This file is part of ClockDivider.
//
// ClockDivider is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ClockDivider is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ClockDivider.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reactivesynth/clockdivider/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10.0, 10.5, 0.1)
	test.ExpectApproximate(t, -10.0, -10.5, 0.1)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(5)
	test.DemandSuccess(t, err)

	fmt.Fprint(r, "abc")
	test.ExpectEquality(t, r.String(), "abc")

	fmt.Fprint(r, "de")
	test.ExpectEquality(t, r.String(), "abcde")

	// wrap around
	fmt.Fprint(r, "fg")
	test.ExpectEquality(t, r.String(), "cdefg")

	// write larger than the ring
	fmt.Fprint(r, "0123456789")
	test.ExpectEquality(t, r.String(), "56789")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	var w test.CompareWriter
	fmt.Fprint(&w, "hello ")
	fmt.Fprint(&w, "world")
	test.ExpectSuccess(t, w.Compare("hello world"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
