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

// Package preferences collates the application preference values and saves
// them to the preferences file.
//
// The divider values are the defaults used by the CLI when no automation
// source is given for a parameter. They are application settings and are
// not saved as part of any rendered file.
package preferences

import (
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/params"
	"github.com/reactivesynth/clockdivider/paths"
	"github.com/reactivesynth/clockdivider/prefs"
)

// Preferences defines and collates all the preference values used by the
// application.
type Preferences struct {
	dsk *prefs.Disk

	SampleRate prefs.Int
	Channels   prefs.Int
	Quantum    prefs.Int

	AttackAfterTicks  prefs.Int
	ReleaseAfterTocks prefs.Int
	TicksOnReset      prefs.Int
	TocksOnReset      prefs.Int

	QueueSize prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If pth is empty the default preferences file in the resource
// directory is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.SampleRate.SetRange(8000, 192000)
	p.Channels.SetRange(1, 8)
	p.Quantum.SetRange(1, 4096)
	p.AttackAfterTicks.SetRange(int(params.Descriptors[params.AttackAfterTicks].Min), int(params.Descriptors[params.AttackAfterTicks].Max))
	p.ReleaseAfterTocks.SetRange(int(params.Descriptors[params.ReleaseAfterTocks].Min), int(params.Descriptors[params.ReleaseAfterTocks].Max))
	p.TicksOnReset.SetRange(int(params.Descriptors[params.TicksOnReset].Min), int(params.Descriptors[params.TicksOnReset].Max))
	p.TocksOnReset.SetRange(int(params.Descriptors[params.TocksOnReset].Min), int(params.Descriptors[params.TocksOnReset].Max))
	p.QueueSize.SetRange(2, 65536)

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		val *prefs.Int
	}{
		{"audio.sampleRate", &p.SampleRate},
		{"audio.channels", &p.Channels},
		{"audio.quantum", &p.Quantum},
		{"divider.attackAfterTicks", &p.AttackAfterTicks},
		{"divider.releaseAfterTocks", &p.ReleaseAfterTocks},
		{"divider.ticksOnReset", &p.TicksOnReset},
		{"divider.tocksOnReset", &p.TocksOnReset},
		{"control.queueSize", &p.QueueSize},
	} {
		if err := p.dsk.Add(e.key, e.val); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	for _, d := range []struct {
		val *prefs.Int
		v   int
	}{
		{&p.SampleRate, 48000},
		{&p.Channels, 2},
		{&p.Quantum, 128},
		{&p.AttackAfterTicks, int(params.Descriptors[params.AttackAfterTicks].Default)},
		{&p.ReleaseAfterTocks, int(params.Descriptors[params.ReleaseAfterTocks].Default)},
		{&p.TicksOnReset, int(params.Descriptors[params.TicksOnReset].Default)},
		{&p.TocksOnReset, int(params.Descriptors[params.TocksOnReset].Default)},
		{&p.QueueSize, 256},
	} {
		if err := d.val.Set(d.v); err != nil {
			return err
		}
	}
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Thresholds returns the default thresholds as a parameter value.
func (p *Preferences) Thresholds() params.Thresholds {
	return params.Thresholds{
		AttackAfterTicks:  int64(p.AttackAfterTicks.Get().(int)),
		ReleaseAfterTocks: int64(p.ReleaseAfterTocks.Get().(int)),
	}
}

// ResetTargets returns the default reset targets as a parameter value.
func (p *Preferences) ResetTargets() params.ResetTargets {
	return params.ResetTargets{
		TicksOnReset: int64(p.TicksOnReset.Get().(int)),
		TocksOnReset: int64(p.TocksOnReset.Get().(int)),
	}
}
