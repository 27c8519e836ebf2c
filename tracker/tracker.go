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

package tracker

import (
	"slices"

	"github.com/reactivesynth/clockdivider/notifications"
)

// Source of an Entry.
type Source int

// List of valid Source values.
const (
	Clock Source = iota
	Reset
	Output
	numSources
)

func (s Source) String() string {
	switch s {
	case Clock:
		return "clock"
	case Reset:
		return "reset"
	case Output:
		return "output"
	}
	return "unknown"
}

// Entry records a change of a gate.
type Entry struct {
	Sample int64
	Source Source
	Value  bool

	// number of samples since the previous rising edge of the same source.
	// zero if this is not a rising edge or if there was no previous rising
	// edge
	Interval int64
}

// DefaultMaxEntries is used by NewTracker() when max is not positive.
const DefaultMaxEntries = 1024

// Tracker implements the notifications.Notify interface and the engine.Sink
// interface.
type Tracker struct {
	max     int
	entries []Entry

	// the output gate is not reported through notices so the tracker keeps
	// its own copy of the previous value
	prevOutput bool

	lastRise [numSources]int64
	seenRise [numSources]bool
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The oldest entries are forgotten when the number of entries exceeds max.
func NewTracker(max int) *Tracker {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Tracker{
		max:     max,
		entries: make([]Entry, 0, max),
	}
}

func (tr *Tracker) add(sample int64, src Source, value bool) {
	e := Entry{
		Sample: sample,
		Source: src,
		Value:  value,
	}

	if value {
		if tr.seenRise[src] {
			e.Interval = sample - tr.lastRise[src]
		}
		tr.lastRise[src] = sample
		tr.seenRise[src] = true
	}

	tr.entries = append(tr.entries, e)
	if len(tr.entries) > tr.max {
		tr.entries = tr.entries[1:]
	}
}

// Notify implements the notifications.Notify interface.
func (tr *Tracker) Notify(n notifications.Notice) error {
	switch n.Kind {
	case notifications.ClockTriggerChange:
		tr.add(n.Sample, Clock, n.Value)
	case notifications.ResetTriggerChange:
		tr.add(n.Sample, Reset, n.Value)
	}
	return nil
}

// Consume implements the engine.Sink interface. Only the first channel is
// examined.
func (tr *Tracker) Consume(position int64, outputs [][]float32) error {
	if len(outputs) == 0 {
		return nil
	}
	for i, v := range outputs[0] {
		high := v != 0
		if high != tr.prevOutput {
			tr.add(position+int64(i), Output, high)
			tr.prevOutput = high
		}
	}
	return nil
}

// Copy makes a copy of the Tracker entries ordered by sample position.
// Entries at the same position keep the order in which they were added.
func (tr *Tracker) Copy() []Entry {
	c := slices.Clone(tr.entries)
	slices.SortStableFunc(c, func(a, b Entry) int {
		switch {
		case a.Sample < b.Sample:
			return -1
		case a.Sample > b.Sample:
			return 1
		}
		return 0
	})
	return c
}

// Len returns the number of entries.
func (tr *Tracker) Len() int {
	return len(tr.entries)
}

// Reset forgets all entries.
func (tr *Tracker) Reset() {
	tr.entries = tr.entries[:0]
	tr.prevOutput = false
	tr.seenRise = [numSources]bool{}
}
