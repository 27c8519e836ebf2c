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

package engine

import (
	"context"
	"math"

	"github.com/reactivesynth/clockdivider/automation"
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/logger"
	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/params"
	"github.com/reactivesynth/clockdivider/processor"
)

// Sink receives the output of every block. The outputs are only valid for the
// duration of the call.
type Sink interface {
	Consume(position int64, outputs [][]float32) error
}

// Sources is the automation source for each parameter. A nil entry results
// in an empty parameter buffer, meaning the parameter's default value.
type Sources [params.NumParams]automation.Source

// SourceError is returned by Step() when an automation source reports an
// error.
const SourceError = "engine: %s: %v"

// SinkError is returned by Step() when a sink fails.
const SinkError = "engine: sink: %v"

// Engine drives a processor.Processor. Create with NewEngine().
type Engine struct {
	proc    *processor.Processor
	sources Sources

	block   params.Block
	storage [params.NumParams][]float32
	outputs [][]float32

	sinks  []Sink
	notify notifications.Notify
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The number of channels must be at least one.
func NewEngine(proc *processor.Processor, channels int, sources Sources) *Engine {
	e := &Engine{
		proc:    proc,
		sources: sources,
		outputs: make([][]float32, max(channels, 1)),
	}

	for i := range e.storage {
		e.storage[i] = make([]float32, proc.Quantum())
	}
	for i := range e.outputs {
		e.outputs[i] = make([]float32, proc.Quantum())
	}

	return e
}

// AddSink adds a sink to the engine. Sinks are called in the order in which
// they were added.
func (e *Engine) AddSink(s Sink) {
	e.sinks = append(e.sinks, s)
}

// SetNotify sets the receiver of the notices produced by the processor. If
// set, the processor's notice queue is drained after every block. Do not use
// this if the queue is drained elsewhere, for example by a control.Port.
func (e *Engine) SetNotify(n notifications.Notify) {
	e.notify = n
}

// Processor returns the processor driven by the engine.
func (e *Engine) Processor() *processor.Processor {
	return e.proc
}

// Outputs returns the output buffers of the most recent block.
func (e *Engine) Outputs() [][]float32 {
	return e.outputs
}

// Step processes one block. It does not allocate unless an automation source
// or sink allocates.
func (e *Engine) Step() error {
	position := e.proc.Position()

	for id, src := range e.sources {
		if src == nil {
			e.block[id] = nil
			continue
		}
		e.block[id] = src.Fill(position, e.storage[id])
		if r, ok := src.(interface{ Err() error }); ok {
			if err := r.Err(); err != nil {
				return curated.Errorf(SourceError, params.ID(id), err)
			}
		}
	}

	// a source returning a buffer of the wrong length would otherwise be read
	// out of bounds by the processor
	if err := e.block.Validate(e.proc.Quantum()); err != nil {
		return err
	}

	e.proc.Process(&e.block, e.outputs)

	for _, s := range e.sinks {
		if err := s.Consume(position, e.outputs); err != nil {
			return curated.Errorf(SinkError, err)
		}
	}

	if e.notify != nil {
		if q := e.proc.Notices(); q != nil {
			if err := q.Drain(e.notify); err != nil {
				return curated.Errorf(SinkError, err)
			}
		}
	}

	return nil
}

// Run the engine for the number of blocks or until the context is cancelled.
// If blocks is zero or less the engine runs until the context is cancelled.
func (e *Engine) Run(ctx context.Context, blocks int) error {
	logger.Logf(logger.Allow, "engine", "running from sample %d", e.proc.Position())

	for n := 0; blocks <= 0 || n < blocks; n++ {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "engine", "stopped at sample %d", e.proc.Position())
			return ctx.Err()
		default:
		}

		if err := e.Step(); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "engine", "finished at sample %d", e.proc.Position())

	return nil
}

// BlocksFor returns the number of blocks required to cover the duration in
// seconds at the sample rate. Partial blocks are rounded up.
func BlocksFor(seconds float64, sampleRate int, quantum int) int {
	if seconds <= 0 || sampleRate <= 0 || quantum <= 0 {
		return 0
	}
	return int(math.Ceil(seconds * float64(sampleRate) / float64(quantum)))
}
