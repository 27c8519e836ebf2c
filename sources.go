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
	"os"
	"strings"

	"github.com/reactivesynth/clockdivider/automation"
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/engine"
	"github.com/reactivesynth/clockdivider/logger"
	"github.com/reactivesynth/clockdivider/modalflag"
	"github.com/reactivesynth/clockdivider/params"
	"github.com/reactivesynth/clockdivider/preferences"
	"github.com/reactivesynth/clockdivider/prefs"
	"github.com/reactivesynth/clockdivider/soundload"
	"github.com/reactivesynth/clockdivider/statsview"
)

// the prefix of a source description that names a function in the Lua script
const luaPrefix = "lua:"

// dividerArgs are the flags shared by all modes.
type dividerArgs struct {
	prefs     *string
	prefsFile *string

	clock     *string
	clockFile *string
	reset     *string
	resetFile *string
	threshold *float64
	loop      *bool
	lua       *string

	attack       *string
	release      *string
	ticksOnReset *string
	tocksOnReset *string

	seconds   *float64
	log       *bool
	statsview *bool
}

func addDividerArgs(md *modalflag.Modes, seconds float64) *dividerArgs {
	return &dividerArgs{
		prefs:     md.AddString("prefs", "", "preferences to override for this session (key::value; ...)"),
		prefsFile: md.AddString("prefsfile", "", "alternative preferences file"),

		clock:     md.AddString("clock", "", "clock trigger source: every:P[:W[:O]], at:N,N,..., const:V or lua:function"),
		clockFile: md.AddString("clock-file", "", "WAV or MP3 file to use as the clock trigger"),
		reset:     md.AddString("reset", "", "reset trigger source (same forms as -clock)"),
		resetFile: md.AddString("reset-file", "", "WAV or MP3 file to use as the reset trigger"),
		threshold: md.AddFloat64("threshold", 0.5, "gate threshold for trigger files"),
		loop:      md.AddBool("loop", false, "loop trigger files"),
		lua:       md.AddString("lua", "", "Lua script defining functions for lua: sources"),

		attack:       md.AddString("attack", "", "attackAfterTicks source (default from preferences)"),
		release:      md.AddString("release", "", "releaseAfterTocks source (default from preferences)"),
		ticksOnReset: md.AddString("ticks-on-reset", "", "ticksOnReset source (default from preferences)"),
		tocksOnReset: md.AddString("tocks-on-reset", "", "tocksOnReset source (default from preferences)"),

		seconds:   md.AddFloat64("seconds", seconds, "duration in seconds"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, "run the runtime statistics server (statsview build only)"),
	}
}

// preferences loads the application preferences with any overrides given by
// the -prefs flag.
func (a *dividerArgs) preferences() (*preferences.Preferences, error) {
	if *a.prefs != "" {
		prefs.PushCommandLineStack(*a.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, logTag, "unused preferences: %s", unused)
			}
		}()
	}
	return preferences.NewPreferences(*a.prefsFile)
}

// sourceSet is the automation for each parameter and the resources that
// must be released after use.
type sourceSet struct {
	sources engine.Sources
	lua     []*automation.Lua
}

func (s *sourceSet) Close() {
	for _, l := range s.lua {
		l.Close()
	}
	s.lua = nil
}

// sources creates the automation sources from the flags. Parameters without
// a flag use the values in the preferences.
func (a *dividerArgs) sources(p *preferences.Preferences, sampleRate int) (*sourceSet, error) {
	set := &sourceSet{}

	var script string
	if *a.lua != "" {
		b, err := os.ReadFile(*a.lua)
		if err != nil {
			return nil, curated.Errorf("lua: %v", err)
		}
		script = string(b)
	}

	source := func(id params.ID, desc string, file string, def automation.Source) error {
		var src automation.Source

		switch {
		case file != "":
			pcm, err := soundload.Load(file)
			if err != nil {
				return err
			}
			src = pcm.Automation(float32(*a.threshold), *a.loop, sampleRate)

		case strings.HasPrefix(desc, luaPrefix):
			if script == "" {
				return curated.Errorf("%s: lua source requires a script (-lua)", id)
			}
			l, err := automation.NewLua(script, strings.TrimPrefix(desc, luaPrefix), sampleRate)
			if err != nil {
				return err
			}
			set.lua = append(set.lua, l)
			src = l

		case desc != "":
			var err error
			src, err = automation.Parse(desc)
			if err != nil {
				return err
			}

		default:
			src = def
		}

		set.sources[id] = src
		return nil
	}

	th := p.Thresholds()
	rt := p.ResetTargets()

	for _, s := range []struct {
		id   params.ID
		desc string
		file string
		def  automation.Source
	}{
		{params.ClockTrigger, *a.clock, *a.clockFile, nil},
		{params.ResetTrigger, *a.reset, *a.resetFile, nil},
		{params.AttackAfterTicks, *a.attack, "", automation.Constant(th.AttackAfterTicks)},
		{params.ReleaseAfterTocks, *a.release, "", automation.Constant(th.ReleaseAfterTocks)},
		{params.TicksOnReset, *a.ticksOnReset, "", automation.Constant(rt.TicksOnReset)},
		{params.TocksOnReset, *a.tocksOnReset, "", automation.Constant(rt.TocksOnReset)},
	} {
		if err := source(s.id, s.desc, s.file, s.def); err != nil {
			set.Close()
			return nil, err
		}
	}

	return set, nil
}

// common start up for all modes.
func (a *dividerArgs) start(md *modalflag.Modes) {
	setLogEcho(md.Output, *a.log)
	logBanner()

	if *a.statsview {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			logger.Log(logger.Allow, logTag, "statsview not available in this build")
		}
	}
}
