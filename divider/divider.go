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

package divider

import (
	"fmt"

	"github.com/reactivesynth/clockdivider/params"
)

// Phase of the divider. Derived from whether the output is high or low.
type Phase int

// List of valid Phase values.
const (
	// output is low and clock edges are counted as ticks
	WaitingForAttack Phase = iota

	// output is high and clock edges are counted as tocks
	WaitingForRelease
)

func (p Phase) String() string {
	switch p {
	case WaitingForAttack:
		return "waiting for attack"
	case WaitingForRelease:
		return "waiting for release"
	}
	return "unknown"
}

// State is the persistent state of a Divider.
type State struct {
	Ticks      int64
	Tocks      int64
	OutputHigh bool

	// gate readings of the previous sample
	PrevClock bool
	PrevReset bool
}

// Phase returns the phase implied by the state.
func (s State) Phase() Phase {
	if s.OutputHigh {
		return WaitingForRelease
	}
	return WaitingForAttack
}

func (s State) String() string {
	o := 0
	if s.OutputHigh {
		o = 1
	}
	return fmt.Sprintf("out=%d ticks=%d tocks=%d (%s)", o, s.Ticks, s.Tocks, s.Phase())
}

// Input to the Step() function. The gate readings are for the current sample
// and the thresholds and targets are those in effect for the current sample.
type Input struct {
	Clock      bool
	Reset      bool
	Thresholds params.Thresholds
	Targets    params.ResetTargets
}

// Output of the Step() function.
type Output struct {
	High bool

	// the stored previous value of the clock or reset gate has changed. the
	// block processor uses these to send notifications to the control plane
	ClockChanged bool
	ResetChanged bool

	ClockStage Stage
	ResetStage Stage
}

// Divider is the clock divider state machine. The zero value is not usable,
// use NewDivider().
type Divider struct {
	state State

	// whether the synthetic reset that precedes the very first sample has
	// happened
	started bool
}

// NewDivider is the preferred method of initialisation for the Divider type.
func NewDivider() *Divider {
	return &Divider{}
}

func (d *Divider) String() string {
	return d.state.String()
}

// Snapshot returns a copy of the current state.
func (d *Divider) Snapshot() State {
	return d.state
}

// Phase returns the current phase.
func (d *Divider) Phase() Phase {
	return d.state.Phase()
}

// Started returns true once the divider has processed its first sample.
func (d *Divider) Started() bool {
	return d.started
}

// Reset sets the counters to the reset targets and forces the output low,
// regardless of the current phase. The targets are used as given and are not
// clamped to be non-negative.
func (d *Divider) Reset(targets params.ResetTargets) {
	d.state.Ticks = targets.TicksOnReset
	d.state.Tocks = targets.TocksOnReset
	d.state.OutputHigh = false
}

// Step the divider by one sample.
func (d *Divider) Step(in Input) Output {
	out := Output{
		ClockStage:   StageOf(d.state.PrevClock, in.Clock),
		ResetStage:   StageOf(d.state.PrevReset, in.Reset),
		ClockChanged: d.state.PrevClock != in.Clock,
		ResetChanged: d.state.PrevReset != in.Reset,
	}

	clockEdge := rising(d.state.PrevClock, in.Clock)
	resetEdge := rising(d.state.PrevReset, in.Reset)

	// the very first sample is always a reset. a clock that is already high
	// on the first sample is not an edge
	if !d.started {
		d.started = true
		resetEdge = true
		clockEdge = false
		if in.Clock {
			out.ClockStage = Open
		}
	}

	d.state.PrevClock = in.Clock
	d.state.PrevReset = in.Reset

	if resetEdge {
		d.Reset(in.Targets)

		// the output is low on the reset sample unless a clock edge
		// coincides with the reset, in which case the edge counts as the
		// first tick after the reset
		if !clockEdge {
			return out
		}
	}

	d.count(clockEdge, in.Thresholds)
	out.High = d.state.OutputHigh

	return out
}

// count the clock edge toward the counter of the current phase and then
// compare that counter with the threshold in effect for this sample. the
// comparison happens every sample, with or without a clock edge, so that a
// lowered threshold takes effect immediately.
func (d *Divider) count(clockEdge bool, th params.Thresholds) {
	if !d.state.OutputHigh {
		if clockEdge {
			d.state.Ticks++
		}
		if d.state.Ticks >= th.AttackAfterTicks {
			d.state.OutputHigh = true
			d.state.Tocks = 0
		}
		return
	}

	if clockEdge {
		d.state.Tocks++
	}
	if d.state.Tocks >= th.ReleaseAfterTocks {
		d.state.OutputHigh = false
		d.state.Ticks = 0
	}
}
