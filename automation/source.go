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

package automation

import "slices"

// Source fills parameter buffers for the block beginning at the absolute
// sample position. The buf argument has space for one value per sample. The
// returned slice is either buf itself or a slice of length one taken from buf.
type Source interface {
	Fill(position int64, buf []float32) []float32
}

// Constant is a value held for every block.
type Constant float32

// Fill implements the Source interface.
func (c Constant) Fill(_ int64, buf []float32) []float32 {
	buf[0] = float32(c)
	return buf[:1]
}

// Every produces a pulse of Width samples every Period samples. The first
// pulse begins at Offset.
type Every struct {
	Period int64
	Width  int64
	Offset int64
}

// Fill implements the Source interface.
func (e Every) Fill(position int64, buf []float32) []float32 {
	width := max(e.Width, 1)
	for i := range buf {
		buf[i] = 0
		p := position + int64(i) - e.Offset
		if p >= 0 && e.Period > 0 && p%e.Period < width {
			buf[i] = 1
		}
	}
	return buf
}

// Pulses produces a pulse of Width samples at each of the listed sample
// positions.
type Pulses struct {
	at    []int64
	width int64
}

// NewPulses is the preferred method of initialisation for the Pulses type. A
// width of less than one is treated as one.
func NewPulses(width int64, at ...int64) *Pulses {
	p := &Pulses{
		at:    slices.Clone(at),
		width: max(width, 1),
	}
	slices.Sort(p.at)
	return p
}

// Fill implements the Source interface.
func (p *Pulses) Fill(position int64, buf []float32) []float32 {
	clear(buf)

	end := position + int64(len(buf))

	// first pulse that can still be sounding at the start of the block
	idx, _ := slices.BinarySearch(p.at, position-p.width+1)
	for _, a := range p.at[idx:] {
		if a >= end {
			break
		}
		for s := max(a, position); s < min(a+p.width, end); s++ {
			buf[s-position] = 1
		}
	}

	return buf
}

// PCM is a gate derived from a sampled signal. The gate is high where the
// absolute value of the signal exceeds the threshold.
type PCM struct {
	Data      []float32
	Threshold float32

	// loop the data. if false the gate is low after the end of the data
	Loop bool
}

// Fill implements the Source interface.
func (p PCM) Fill(position int64, buf []float32) []float32 {
	n := int64(len(p.Data))
	for i := range buf {
		buf[i] = 0
		if n == 0 {
			continue
		}

		s := position + int64(i)
		if s >= n {
			if !p.Loop {
				continue
			}
			s %= n
		}

		v := p.Data[s]
		if v < 0 {
			v = -v
		}
		if v > p.Threshold {
			buf[i] = 1
		}
	}
	return buf
}
