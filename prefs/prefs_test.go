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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/prefs"
	"github.com/reactivesynth/clockdivider/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get(), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get(), false)
	test.ExpectSuccess(t, v.Set(" true "))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get(), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get(), 10)
	test.ExpectSuccess(t, v.Set("-3"))
	test.ExpectEquality(t, v.String(), "-3")
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectEquality(t, v.Get(), -3)

	v.SetRange(1, 100)
	err := v.Set(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.OutOfRange))
	test.ExpectSuccess(t, v.Set(100))

	// zero is outside the range so reset uses the minimum
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get(), 1)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(0.5))
	test.ExpectEquality(t, v.String(), "0.500")
	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectEquality(t, v.Get(), 1.25)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get(), 2.0)
	test.ExpectFailure(t, v.Set(true))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("hello world"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("abcdefgh"))
	test.ExpectEquality(t, v.Get(), "abcde")
	test.ExpectSuccess(t, v.Set(12))
	test.ExpectEquality(t, v.Get(), "12")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var pre, post int

	v.SetHookPre(func(value prefs.Value) error {
		pre = value.(int)
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(7))
	test.ExpectEquality(t, pre, 7)
	test.ExpectEquality(t, post, 7)

	// a failing pre hook prevents the update
	v.SetHookPre(func(value prefs.Value) error {
		return curated.Errorf("rejected")
	})
	test.ExpectFailure(t, v.Set(8))
	test.ExpectEquality(t, v.Get(), 7)
}

func TestGeneric(t *testing.T) {
	var w, h int
	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			if w == 0 {
				return prefs.GenericGetValueUndefined
			}
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, v.Set("3,4"))
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 4)
	test.ExpectEquality(t, v.String(), "3,4")

	// undefined get uses the most recent set value
	w = 0
	test.ExpectEquality(t, v.String(), "3,4")
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var rate prefs.Int
	var name prefs.String
	test.ExpectSuccess(t, dsk.Add("audio.sampleRate", &rate))
	test.ExpectSuccess(t, dsk.Add("trace.name", &name))
	test.ExpectFailure(t, dsk.Add("audio.sampleRate", &rate))
	test.ExpectFailure(t, dsk.Add("bad key", &rate))
	test.ExpectFailure(t, dsk.Add("", &rate))

	test.ExpectSuccess(t, rate.Set(48000))
	test.ExpectSuccess(t, name.Set("test"))

	// file does not exist yet so the current values are saved
	err = dsk.Load(true)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), strings.Join([]string{
		prefs.WarningBoilerPlate,
		"audio.sampleRate :: 48000",
		"trace.name :: test",
		"",
	}, "\n"))

	test.ExpectEquality(t, dsk.String(), "audio.sampleRate :: 48000\ntrace.name :: test\n")

	// a second disk sharing the same file
	other, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	var ch prefs.Int
	test.ExpectSuccess(t, other.Add("audio.channels", &ch))
	test.ExpectSuccess(t, ch.Set(2))
	test.ExpectSuccess(t, other.Save())

	// reload the first disk after changing the values
	test.ExpectSuccess(t, rate.Set(1))
	test.ExpectSuccess(t, name.Set(""))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, rate.Get(), 48000)
	test.ExpectEquality(t, name.Get(), "test")

	// saving the first disk preserves the key belonging to the other disk
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectSuccess(t, ch.Set(0))
	test.ExpectSuccess(t, other.Load(false))
	test.ExpectEquality(t, ch.Get(), 2)

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, rate.Get(), 0)
}

func TestDiskCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)

	var rate prefs.Int
	test.ExpectSuccess(t, dsk.Add("audio.sampleRate", &rate))
	test.ExpectSuccess(t, rate.Set(48000))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("audio.sampleRate::44100; foo::bar")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, rate.Get(), 44100)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")

	// the command line value is not saved
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, rate.Get(), 48000)

	// a bad command line value is an error
	prefs.PushCommandLineStack("audio.sampleRate::fast")
	test.ExpectFailure(t, dsk.Load(false))
	prefs.PopCommandLineStack()
}
