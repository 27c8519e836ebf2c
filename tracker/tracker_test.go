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

package tracker_test

import (
	"testing"

	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/test"
	"github.com/reactivesynth/clockdivider/tracker"
)

func TestTracker(t *testing.T) {
	tr := tracker.NewTracker(0)

	tr.Notify(notifications.Notice{Kind: notifications.ClockTriggerChange, Value: true, Sample: 2})
	tr.Notify(notifications.Notice{Kind: notifications.ClockTriggerChange, Value: false, Sample: 3})
	tr.Notify(notifications.Notice{Kind: notifications.ModuleReady})
	tr.Notify(notifications.Notice{Kind: notifications.ClockTriggerChange, Value: true, Sample: 6})
	tr.Consume(4, [][]float32{{0, 0, 1, 1}})

	test.DemandEquality(t, tr.Len(), 4)

	e := tr.Copy()
	test.ExpectEquality(t, e[0], tracker.Entry{Sample: 2, Source: tracker.Clock, Value: true})
	test.ExpectEquality(t, e[1], tracker.Entry{Sample: 3, Source: tracker.Clock, Value: false})

	// entries at the same sample keep the order in which they were added
	test.ExpectEquality(t, e[2], tracker.Entry{Sample: 6, Source: tracker.Clock, Value: true, Interval: 4})
	test.ExpectEquality(t, e[3], tracker.Entry{Sample: 6, Source: tracker.Output, Value: true})

	tr.Reset()
	test.ExpectEquality(t, tr.Len(), 0)
}

func TestTrackerLimit(t *testing.T) {
	tr := tracker.NewTracker(3)
	for i := range 10 {
		tr.Notify(notifications.Notice{Kind: notifications.ResetTriggerChange, Value: i%2 == 0, Sample: int64(i)})
	}
	e := tr.Copy()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].Sample, 7)
	test.ExpectEquality(t, e[1].Interval, 2)
}

func TestConversions(t *testing.T) {
	test.ExpectEquality(t, tracker.Frequency(480, 48000), 100.0)
	test.ExpectEquality(t, tracker.Frequency(0, 48000), 0.0)
	test.ExpectEquality(t, tracker.BPM(24000, 48000, 1), 120.0)
	test.ExpectEquality(t, tracker.BPM(6000, 48000, 4), 120.0)
	test.ExpectEquality(t, tracker.Ratio(400, 100), 4.0)
}

func TestWrite(t *testing.T) {
	tr := tracker.NewTracker(0)
	tr.Notify(notifications.Notice{Kind: notifications.ClockTriggerChange, Value: true, Sample: 0})
	tr.Notify(notifications.Notice{Kind: notifications.ClockTriggerChange, Value: true, Sample: 24000})

	w := &test.CompareWriter{}
	test.DemandSuccess(t, tr.Write(w, 48000, false))
	test.ExpectSuccess(t, w.Compare(""+
		"      sample  gate    value    interval        bpm\n"+
		"           0  clock   high \n"+
		"       24000  clock   high        24000     120.00\n"))
}
