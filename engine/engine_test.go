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

package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reactivesynth/clockdivider/automation"
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/divider"
	"github.com/reactivesynth/clockdivider/engine"
	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/params"
	"github.com/reactivesynth/clockdivider/processor"
	"github.com/reactivesynth/clockdivider/test"
	"github.com/reactivesynth/clockdivider/tracker"
)

// capture is a sink that keeps a copy of the first output channel.
type capture struct {
	gate      []float32
	positions []int64
	fail      error
}

func (c *capture) Consume(position int64, outputs [][]float32) error {
	if c.fail != nil {
		return c.fail
	}
	c.positions = append(c.positions, position)
	c.gate = append(c.gate, outputs[0]...)
	return nil
}

func newProcessor(t *testing.T) *processor.Processor {
	t.Helper()
	p := processor.NewProcessor(16, notifications.NewQueue(64))
	test.DemandSuccess(t, p.Bind(divider.Native{}))
	return p
}

func TestDivideByFour(t *testing.T) {
	var src engine.Sources
	src[params.ClockTrigger] = automation.Every{Period: 4, Offset: 1}
	src[params.AttackAfterTicks] = automation.Constant(2)
	src[params.ReleaseAfterTocks] = automation.Constant(2)

	e := engine.NewEngine(newProcessor(t), 2, src)

	c := &capture{}
	tr := tracker.NewTracker(0)
	e.AddSink(c)
	e.AddSink(tr)
	e.SetNotify(tr)

	test.DemandSuccess(t, e.Run(context.Background(), 4))
	test.ExpectEquality(t, len(c.gate), 64)
	test.ExpectEquality(t, len(c.positions), 4)
	test.ExpectEquality(t, c.positions[3], 48)
	test.ExpectEquality(t, len(e.Outputs()), 2)

	// clock edges at 1, 5, 9, 13, ... so the output rises at 5 and falls at
	// 13 and the cycle repeats every 16 samples
	for i, v := range c.gate {
		high := (i-5+16)%16 < 8
		if i < 5 {
			high = false
		}
		if high {
			test.ExpectEquality(t, v, 1.0, i)
		} else {
			test.ExpectEquality(t, v, 0.0, i)
		}
	}

	// the tracker measures the period of the clock and the output
	var clockInterval, outputInterval int64
	for _, en := range tr.Copy() {
		if en.Interval == 0 {
			continue
		}
		switch en.Source {
		case tracker.Clock:
			clockInterval = en.Interval
		case tracker.Output:
			outputInterval = en.Interval
		}
	}
	test.ExpectEquality(t, clockInterval, 4)
	test.ExpectEquality(t, outputInterval, 16)
	test.ExpectEquality(t, tracker.Ratio(outputInterval, clockInterval), 4.0)
}

func TestRunCancelled(t *testing.T) {
	e := engine.NewEngine(newProcessor(t), 1, engine.Sources{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, 0)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectEquality(t, e.Processor().Position(), 0)
}

func TestSinkError(t *testing.T) {
	e := engine.NewEngine(newProcessor(t), 1, engine.Sources{})
	e.AddSink(&capture{fail: errors.New("disk full")})

	err := e.Run(context.Background(), 10)
	test.ExpectSuccess(t, curated.Is(err, engine.SinkError))
	test.ExpectEquality(t, e.Processor().Position(), 16)
}

func TestSourceError(t *testing.T) {
	l, err := automation.NewLua(`function clock(s) if s > 20 then error("boom") end return 0 end`, "clock", 48000)
	test.DemandSuccess(t, err)
	defer l.Close()

	var src engine.Sources
	src[params.ClockTrigger] = l

	e := engine.NewEngine(newProcessor(t), 1, src)
	err = e.Run(context.Background(), 10)
	test.ExpectSuccess(t, curated.Is(err, engine.SourceError))
	test.ExpectEquality(t, e.Processor().Position(), 16)
}

// short is a source that fills only part of the buffer.
type short struct{}

func (short) Fill(_ int64, buf []float32) []float32 {
	return buf[:3]
}

func TestInvalidBufferLength(t *testing.T) {
	var src engine.Sources
	src[params.ClockTrigger] = automation.Every{Period: 4}
	src[params.TocksOnReset] = short{}

	e := engine.NewEngine(newProcessor(t), 1, src)
	c := &capture{}
	e.AddSink(c)

	err := e.Run(context.Background(), 10)
	test.ExpectSuccess(t, curated.Is(err, params.InvalidBufferLength))
	test.ExpectEquality(t, e.Processor().Position(), 0)
	test.ExpectEquality(t, len(c.gate), 0)
}

func TestBlocksFor(t *testing.T) {
	test.ExpectEquality(t, engine.BlocksFor(1, 48000, 128), 375)
	test.ExpectEquality(t, engine.BlocksFor(0.001, 48000, 128), 1)
	test.ExpectEquality(t, engine.BlocksFor(0, 48000, 128), 0)
}
