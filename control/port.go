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

package control

import (
	"context"
	"time"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/logger"
	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/processor"
)

// PollInterval is the period at which Run() drains the notice queue of the
// block processor.
const PollInterval = 5 * time.Millisecond

// Port is the message port between the host and a processor.Processor.
type Port struct {
	proc *processor.Processor

	inbound  chan Message
	outbound chan Message

	// bind has been attempted. only touched by the Run() goroutine
	bindAttempted bool
}

// NewPort is the preferred method of initialisation for the Port type. The
// queueSize argument is the capacity of both the inbound and outbound
// channels.
func NewPort(proc *processor.Processor, queueSize int) *Port {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Port{
		proc:     proc,
		inbound:  make(chan Message, queueSize),
		outbound: make(chan Message, queueSize),
	}
}

// Post a message to the core. Never blocks. Returns false if the message
// could not be queued.
func (p *Port) Post(msg Message) bool {
	select {
	case p.inbound <- msg:
		return true
	default:
		logger.Logf(logger.Allow, "control", "inbound queue full: %s dropped", msg.Type)
		return false
	}
}

// Outbound returns the channel on which messages from the core are
// delivered.
func (p *Port) Outbound() <-chan Message {
	return p.outbound
}

// Run services the port until the context is cancelled. Any notices waiting
// in the processor's queue are forwarded before Run() returns.
func (p *Port) Run(ctx context.Context) error {
	tck := time.NewTicker(PollInterval)
	defer tck.Stop()

	n := notifier{ctx: ctx, out: p.outbound}

	for {
		select {
		case <-ctx.Done():
			// whatever fits in the outbound channel is delivered
			p.drain(notifier{out: p.outbound})
			return ctx.Err()
		case msg := <-p.inbound:
			if err := p.apply(ctx, msg); err != nil {
				return err
			}
		case <-tck.C:
			if err := p.drain(n); err != nil {
				return err
			}
		}
	}
}

func (p *Port) drain(n notifier) error {
	q := p.proc.Notices()
	if q == nil {
		return nil
	}
	return q.Drain(n)
}

func (p *Port) apply(ctx context.Context, msg Message) error {
	switch msg.Type {
	case ManualClockTrigger:
		p.proc.SetManualClock(msg.Value)
	case ManualResetTrigger:
		p.proc.SetManualReset(msg.Value)
	case Bind:
		return p.bind(ctx, msg)
	default:
		logger.Logf(logger.Allow, "control", "unexpected message type: %s", msg.Type)
	}
	return nil
}

func (p *Port) bind(ctx context.Context, msg Message) error {
	if p.bindAttempted {
		logger.Log(logger.Allow, "control", "bind already attempted: ignoring")
		return nil
	}
	p.bindAttempted = true

	var err error
	if msg.Module == nil {
		err = curated.Errorf(processor.BindFailed, "no compute module")
	} else {
		err = p.proc.Bind(msg.Module)
	}

	if err != nil {
		logger.Log(logger.Allow, "control", err)
		return send(ctx, p.outbound, Message{
			Type:   BindFailed,
			Err:    err,
			Sample: p.proc.Position(),
		})
	}

	logger.Logf(logger.Allow, "control", "module ready (quantum %d)", p.proc.Quantum())
	return send(ctx, p.outbound, Message{
		Type:   ModuleReady,
		Sample: p.proc.Position(),
	})
}

// send blocks until the message is delivered or the context is cancelled.
func send(ctx context.Context, out chan<- Message, msg Message) error {
	select {
	case out <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OutboundFull is returned by a notifier with no context when the outbound
// channel has no space.
const OutboundFull = "control: outbound channel full"

// notifier adapts the outbound channel to the notifications.Notify interface.
// without a context the notifier does not wait for space in the channel.
type notifier struct {
	ctx context.Context
	out chan<- Message
}

func (n notifier) Notify(notice notifications.Notice) error {
	msg := messageFromNotice(notice)
	if n.ctx == nil {
		select {
		case n.out <- msg:
			return nil
		default:
			return curated.Errorf(OutboundFull)
		}
	}
	return send(n.ctx, n.out, msg)
}
