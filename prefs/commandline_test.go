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

package prefs_test

import (
	"testing"

	"github.com/reactivesynth/clockdivider/prefs"
	"github.com/reactivesynth/clockdivider/test"
)

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	ok, v := prefs.GetCommandLinePref("foo")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "bar")

	// values are removed once they have been returned
	ok, _ = prefs.GetCommandLinePref("foo")
	test.ExpectFailure(t, ok)

	prefs.PushCommandLineStack("a::1; malformed; b :: 2 ")
	ok, v = prefs.GetCommandLinePref("b")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "a::1")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
