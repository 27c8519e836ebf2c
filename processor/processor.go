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

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/divider"
	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/params"
)

// RenderQuantum is the conventional number of samples in a block.
const RenderQuantum = 128

// Sentinel error patterns returned by Bind().
const (
	AlreadyBound = "processor: divider already bound"
	BindFailed   = "processor: bind failed: %v"
)

// Processor is the block processor. Create with NewProcessor().
type Processor struct {
	quantum int

	// nil until the compute module has been bound
	divider atomic.Pointer[divider.Divider]

	override Override

	// notices are pushed onto the queue by Process() and popped by the control
	// plane. the queue may be nil in which case no notices are produced
	notices *notifications.Queue

	// absolute position of the first sample of the next block. only written
	// by Process()
	position atomic.Int64

	snapshot snapshot
}

// NewProcessor is the preferred method of initialisation for the Processor
// type. A quantum of zero or less is replaced by RenderQuantum.
func NewProcessor(quantum int, notices *notifications.Queue) *Processor {
	if quantum <= 0 {
		quantum = RenderQuantum
	}
	return &Processor{
		quantum: quantum,
		notices: notices,
	}
}

// Quantum returns the number of samples in each block.
func (p *Processor) Quantum() int {
	return p.quantum
}

// Notices returns the queue that notices are pushed to. May be nil.
func (p *Processor) Notices() *notifications.Queue {
	return p.notices
}

// Position returns the absolute position of the first sample of the next
// block.
func (p *Processor) Position() int64 {
	return p.position.Load()
}

// Bind instantiates a divider from the module and installs it. A processor
// can only be bound once.
func (p *Processor) Bind(m divider.Module) error {
	if p.divider.Load() != nil {
		return curated.Errorf(AlreadyBound)
	}

	d, err := m.Instantiate(p.quantum)
	if err != nil {
		return curated.Errorf(BindFailed, err)
	}
	if d == nil {
		return curated.Errorf(BindFailed, "no divider instantiated")
	}

	if !p.divider.CompareAndSwap(nil, d) {
		return curated.Errorf(AlreadyBound)
	}

	return nil
}

// IsBound returns true if a divider has been bound.
func (p *Processor) IsBound() bool {
	return p.divider.Load() != nil
}

// SetManualClock sets or clears the manual clock override. Safe to call from
// any goroutine. The new value takes effect from the next block.
func (p *Processor) SetManualClock(v bool) {
	p.override.clock.Store(v)
}

// SetManualReset sets or clears the manual reset override. Safe to call from
// any goroutine. The new value takes effect from the next block.
func (p *Processor) SetManualReset(v bool) {
	p.override.reset.Store(v)
}

// Override returns the current state of the manual override latches.
func (p *Processor) Override() (clock bool, reset bool) {
	return p.override.clock.Load(), p.override.reset.Load()
}

// Snapshot returns the divider state as it was at the end of the most recent
// block. The second return value is false if no block has been processed
// since the divider was bound.
func (p *Processor) Snapshot() (divider.State, bool) {
	return p.snapshot.load()
}

// Process one block. The gate is written as 1.0 or 0.0 into the first Quantum()
// samples of every output channel. Each channel must be at least Quantum()
// samples long.
//
// Every parameter buffer in the block must be empty, of length one or of
// length Quantum(). See params.Block.Validate().
func (p *Processor) Process(block *params.Block, outputs [][]float32) {
	d := p.divider.Load()
	if d == nil {
		for _, ch := range outputs {
			clear(ch[:p.quantum])
		}
		return
	}

	clock, reset := p.Override()
	smp := params.NewSampler(block, clock, reset)

	var gate []float32
	if len(outputs) > 0 {
		gate = outputs[0][:p.quantum]
	}

	pos := p.position.Load()

	for i := 0; i < p.quantum; i++ {
		out := d.Step(divider.Input{
			Clock:      smp.Clock(i),
			Reset:      smp.Reset(i),
			Thresholds: smp.Thresholds(i),
			Targets:    smp.ResetTargets(i),
		})

		if gate != nil {
			if out.High {
				gate[i] = 1.0
			} else {
				gate[i] = 0.0
			}
		}

		if p.notices != nil {
			if out.ClockChanged {
				p.notices.Push(notifications.Notice{
					Kind:   notifications.ClockTriggerChange,
					Value:  out.ClockStage == divider.Opening || out.ClockStage == divider.Open,
					Sample: pos + int64(i),
				})
			}
			if out.ResetChanged {
				p.notices.Push(notifications.Notice{
					Kind:   notifications.ResetTriggerChange,
					Value:  out.ResetStage == divider.Opening || out.ResetStage == divider.Open,
					Sample: pos + int64(i),
				})
			}
		}
	}

	for _, ch := range outputs[min(1, len(outputs)):] {
		copy(ch[:p.quantum], gate)
	}

	p.position.Store(pos + int64(p.quantum))
	p.snapshot.store(d.Snapshot())
}
