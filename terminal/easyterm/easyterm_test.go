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

package easyterm

import (
	"context"
	"os"
	"testing"

	"github.com/reactivesynth/clockdivider/test"
)

func TestInitialiseNotTerminal(t *testing.T) {
	var pt Terminal
	test.ExpectFailure(t, pt.Initialise(nil, os.Stdout))

	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	// a pipe is not a terminal
	test.ExpectFailure(t, pt.Initialise(r, w))
}

func TestKeys(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	pt := Terminal{input: r, output: w}
	keys := pt.Keys(context.Background())

	_, err = w.Write([]byte("crq"))
	test.DemandSuccess(t, err)
	w.Close()

	var s []byte
	for k := range keys {
		s = append(s, k)
	}
	test.ExpectEquality(t, string(s), "crq")
}
