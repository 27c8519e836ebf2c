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

package notifications

import "sync/atomic"

// Queue is a bounded single-producer/single-consumer queue of notices. Push()
// must only be called from one goroutine and Pop() from one other goroutine.
type Queue struct {
	ring []Notice
	mask uint64

	// head is the next position to read and tail the next position to write.
	// both increase monotonically
	head atomic.Uint64
	tail atomic.Uint64

	dropped atomic.Uint64
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// capacity is rounded up to the next power of two with a minimum of two.
func NewQueue(capacity int) *Queue {
	n := 2
	for n < capacity {
		n <<= 1
	}
	return &Queue{
		ring: make([]Notice, n),
		mask: uint64(n - 1),
	}
}

// Cap returns the capacity of the queue.
func (q *Queue) Cap() int {
	return len(q.ring)
}

// Len returns the number of notices waiting in the queue.
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Push adds a notice to the queue. It never blocks. Returns false if the queue
// was full and the notice has been dropped.
func (q *Queue) Push(n Notice) bool {
	tail := q.tail.Load()
	if tail-q.head.Load() >= uint64(len(q.ring)) {
		q.dropped.Add(1)
		return false
	}
	q.ring[tail&q.mask] = n
	q.tail.Store(tail + 1)
	return true
}

// Pop removes the oldest notice from the queue. Returns false if the queue is
// empty.
func (q *Queue) Pop() (Notice, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return Notice{}, false
	}
	n := q.ring[head&q.mask]
	q.head.Store(head + 1)
	return n, true
}

// Drain pops every waiting notice and forwards it to the Notify
// implementation. Draining stops on the first error.
func (q *Queue) Drain(to Notify) error {
	for {
		n, ok := q.Pop()
		if !ok {
			return nil
		}
		if err := to.Notify(n); err != nil {
			return err
		}
	}
}

// Dropped returns the number of notices dropped because the queue was full.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
