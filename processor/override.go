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

package processor

import (
	"sync/atomic"

	"github.com/reactivesynth/clockdivider/divider"
)

// Override is the pair of manual override latches. They are written by the
// control plane and read once at the start of each block.
type Override struct {
	clock atomic.Bool
	reset atomic.Bool
}

// snapshot publishes the divider state from the real-time thread without
// allocating. the sequence number is odd while a store is in progress.
type snapshot struct {
	seq   atomic.Uint64
	ticks atomic.Int64
	tocks atomic.Int64
	high  atomic.Bool
	clock atomic.Bool
	reset atomic.Bool
}

func (s *snapshot) store(st divider.State) {
	s.seq.Add(1)
	s.ticks.Store(st.Ticks)
	s.tocks.Store(st.Tocks)
	s.high.Store(st.OutputHigh)
	s.clock.Store(st.PrevClock)
	s.reset.Store(st.PrevReset)
	s.seq.Add(1)
}

func (s *snapshot) load() (divider.State, bool) {
	for {
		seq := s.seq.Load()
		if seq == 0 {
			return divider.State{}, false
		}
		if seq&1 == 1 {
			continue
		}

		st := divider.State{
			Ticks:      s.ticks.Load(),
			Tocks:      s.tocks.Load(),
			OutputHigh: s.high.Load(),
			PrevClock:  s.clock.Load(),
			PrevReset:  s.reset.Load(),
		}

		if s.seq.Load() == seq {
			return st, true
		}
	}
}
