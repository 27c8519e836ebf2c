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

package playback

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/reactivesynth/clockdivider/engine"
)

// bytes in a single float32 sample
const sampleSize = 4

// Stream is an io.Reader of interleaved 32bit float little endian frames.
type Stream struct {
	channels int

	// nil until an engine is attached. while nil the stream is silent
	engine atomic.Pointer[engine.Engine]

	// position in the output of the most recent block. a value equal to the
	// length of the block means another block is required. only touched by
	// Read()
	cursor int

	// set by Attach() to indicate that the cursor must be reset
	restart atomic.Bool

	// first error returned by the engine. once set the stream is silent
	err atomic.Pointer[error]
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream(channels int) *Stream {
	return &Stream{
		channels: max(channels, 1),
	}
}

// Attach an engine to the stream. The first block is processed by the next
// call to Read().
func (s *Stream) Attach(e *engine.Engine) {
	s.engine.Store(e)
	s.restart.Store(true)
}

// Err returns the first error returned by the engine.
func (s *Stream) Err() error {
	if err := s.err.Load(); err != nil {
		return *err
	}
	return nil
}

// Read implements the io.Reader interface. It always fills p with complete
// frames and never returns an error.
func (s *Stream) Read(p []byte) (int, error) {
	frameSize := sampleSize * s.channels
	n := len(p) / frameSize * frameSize

	e := s.engine.Load()
	if e == nil || s.err.Load() != nil {
		clear(p[:n])
		return n, nil
	}

	if s.restart.Swap(false) {
		s.cursor = -1
	}

	outputs := e.Outputs()
	quantum := e.Processor().Quantum()

	for i := 0; i < n; i += frameSize {
		if s.cursor < 0 || s.cursor >= quantum {
			if err := e.Step(); err != nil {
				s.err.Store(&err)
				clear(p[i:n])
				return n, nil
			}
			s.cursor = 0
		}

		for c := 0; c < s.channels; c++ {
			var v float32
			if c < len(outputs) {
				v = outputs[c][s.cursor]
			}
			binary.LittleEndian.PutUint32(p[i+c*sampleSize:], math.Float32bits(v))
		}
		s.cursor++
	}

	return n, nil
}
