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

//go:build headless

package playback

import (
	"time"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/engine"
)

// NoAudioDevice is returned by NewPlayer() in headless builds.
const NoAudioDevice = "playback: no audio device in headless build"

// Player is not available in headless builds.
type Player struct{}

// NewPlayer always fails in headless builds.
func NewPlayer(_ int, _ int, _ time.Duration) (*Player, error) {
	return nil, curated.Errorf(NoAudioDevice)
}

// Start does nothing in headless builds.
func (p *Player) Start(_ *engine.Engine) {}

// Stop does nothing in headless builds.
func (p *Player) Stop() {}

// Err always returns nil in headless builds.
func (p *Player) Err() error { return nil }

// Close does nothing in headless builds.
func (p *Player) Close() error { return nil }
