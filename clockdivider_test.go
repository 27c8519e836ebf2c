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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reactivesynth/clockdivider/soundload"
	"github.com/reactivesynth/clockdivider/test"
)

func TestHelp(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, strings.Contains(w.String(), "available sub-modes: RENDER, PLAY, TRACE"))
}

func TestBadFlag(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"RENDER", "-foo"}, w), exitModeError)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "* error in RENDER mode"))
}

func TestTrace(t *testing.T) {
	dir := t.TempDir()
	dot := filepath.Join(dir, "trace.dot")

	w := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"TRACE",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-clock", "every:4800:1:100",
		"-attack", "2",
		"-release", "2",
		"-seconds", "0.5",
		"-memviz", dot,
	}, w)
	test.DemandEquality(t, r, exitOK, w.String())

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "        4900  output  high \n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "       14500  output  low  \n"), out)

	_, err := os.Stat(dot)
	test.ExpectSuccess(t, err)
}

func TestTraceBadSource(t *testing.T) {
	dir := t.TempDir()

	w := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"TRACE",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-clock", "lua:clock",
	}, w)
	test.ExpectEquality(t, r, exitModeError)
}

func TestTraceLua(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "clock.lua")
	test.DemandSuccess(t, os.WriteFile(script, []byte(`
function clock(sample)
	return sample % 1000 == 10
end
`), 0600))

	w := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"TRACE",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-lua", script,
		"-clock", "lua:clock",
		"-seconds", "0.05",
	}, w)
	test.DemandEquality(t, r, exitOK, w.String())

	// divide by one. the output toggles on every clock edge
	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "          10  clock   high \n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "          10  output  high \n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "        1010  output  low  \n"), out)
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	wav := filepath.Join(dir, "out.wav")

	w := &test.CompareWriter{}
	r := launch(context.Background(), []string{
		"RENDER",
		"-prefsfile", filepath.Join(dir, "preferences"),
		"-prefs", "audio.channels::1",
		"-clock", "every:100:50",
		"-seconds", "0.1",
		"-out", wav,
	}, w)
	test.DemandEquality(t, r, exitOK, w.String())
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "! rendered 4864 frames"), w.String())

	pcm, err := soundload.Load(wav)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(pcm.Data), 4864)
	test.ExpectEquality(t, pcm.SampleRate, 48000)
}
