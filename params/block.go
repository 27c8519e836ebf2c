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

package params

import (
	"math"

	"github.com/reactivesynth/clockdivider/curated"
)

// InvalidBufferLength is returned by Block.Validate() when a parameter buffer
// is neither empty, a single held value or one value per sample.
const InvalidBufferLength = "params: %s: buffer length %d is invalid for a quantum of %d samples"

// Thresholds are the number of clock edges required before the divider
// changes its output.
type Thresholds struct {
	AttackAfterTicks  int64
	ReleaseAfterTocks int64
}

// ResetTargets are the values the divider's counters take when a reset
// occurs. They can be negative.
type ResetTargets struct {
	TicksOnReset int64
	TocksOnReset int64
}

// Block is the set of parameter buffers supplied by the host for one
// invocation of the block processor. Indexed by ID.
type Block [NumParams][]float32

// Validate checks that every buffer in the block has a length compatible with
// the quantum size. The engine calls this once per block. The block processor
// does not and trusts the host to supply well formed blocks.
func (b *Block) Validate(quantum int) error {
	for id := range b {
		l := len(b[id])
		if l > 1 && l != quantum {
			return curated.Errorf(InvalidBufferLength, ID(id), l, quantum)
		}
	}
	return nil
}

// Sample returns the value of the buffer for the sample index, using the
// descriptor to clamp the value and to supply a default for an empty buffer.
func Sample(buf []float32, d Descriptor, i int) float32 {
	switch len(buf) {
	case 0:
		return d.Clamp(d.Default)
	case 1:
		return d.Clamp(buf[0])
	}
	return d.Clamp(buf[i])
}

// Gate converts a trigger value into a gate reading.
func Gate(v float32) bool {
	return v != 0
}

// Count converts a counter value into an integer. Fractional values are
// truncated toward zero. NaN counts as zero.
func Count(v float32) int64 {
	if math.IsNaN(float64(v)) {
		return 0
	}
	return int64(math.Trunc(float64(v)))
}

// Sampler resolves the parameter values for each sample of a block.
type Sampler struct {
	block *Block

	// manual overrides are read once at the start of the block. while an
	// override is active the corresponding buffer is ignored
	manualClock bool
	manualReset bool
}

// NewSampler is the preferred method of initialisation for the Sampler type.
func NewSampler(block *Block, manualClock bool, manualReset bool) Sampler {
	return Sampler{
		block:       block,
		manualClock: manualClock,
		manualReset: manualReset,
	}
}

// Clock returns the clock gate for sample i.
func (s Sampler) Clock(i int) bool {
	if s.manualClock {
		return true
	}
	return Gate(Sample(s.block[ClockTrigger], Descriptors[ClockTrigger], i))
}

// Reset returns the reset gate for sample i.
func (s Sampler) Reset(i int) bool {
	if s.manualReset {
		return true
	}
	return Gate(Sample(s.block[ResetTrigger], Descriptors[ResetTrigger], i))
}

// Thresholds returns the thresholds in effect for sample i.
func (s Sampler) Thresholds(i int) Thresholds {
	return Thresholds{
		AttackAfterTicks:  Count(Sample(s.block[AttackAfterTicks], Descriptors[AttackAfterTicks], i)),
		ReleaseAfterTocks: Count(Sample(s.block[ReleaseAfterTocks], Descriptors[ReleaseAfterTocks], i)),
	}
}

// ResetTargets returns the reset targets in effect for sample i.
func (s Sampler) ResetTargets(i int) ResetTargets {
	return ResetTargets{
		TicksOnReset: Count(Sample(s.block[TicksOnReset], Descriptors[TicksOnReset], i)),
		TocksOnReset: Count(Sample(s.block[TocksOnReset], Descriptors[TocksOnReset], i)),
	}
}
