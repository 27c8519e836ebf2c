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

package params_test

import (
	"math"
	"testing"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/params"
	"github.com/reactivesynth/clockdivider/test"
)

func TestSample(t *testing.T) {
	d := params.Descriptors[params.AttackAfterTicks]

	// empty buffer uses the default
	test.ExpectEquality(t, params.Sample(nil, d, 5), 1)

	// held value
	test.ExpectEquality(t, params.Sample([]float32{3}, d, 0), 3)
	test.ExpectEquality(t, params.Sample([]float32{3}, d, 127), 3)

	// one value per sample
	buf := []float32{4, 5, 6}
	test.ExpectEquality(t, params.Sample(buf, d, 0), 4)
	test.ExpectEquality(t, params.Sample(buf, d, 2), 6)

	// clamping
	test.ExpectEquality(t, params.Sample([]float32{0}, d, 0), 1)
	test.ExpectEquality(t, params.Sample([]float32{-10}, d, 0), 1)
	test.ExpectEquality(t, params.Sample([]float32{2e9}, d, 0), 1e9)

	r := params.Descriptors[params.TicksOnReset]
	test.ExpectEquality(t, params.Sample([]float32{-2}, r, 0), -2)
	test.ExpectEquality(t, params.Sample([]float32{-2e9}, r, 0), -1e9)
}

func TestSampleNaN(t *testing.T) {
	nan := float32(math.NaN())

	d := params.Descriptors[params.AttackAfterTicks]
	test.ExpectEquality(t, params.Sample([]float32{nan}, d, 0), 1)
	test.ExpectEquality(t, params.Sample([]float32{3, nan}, d, 1), 1)

	c := params.Descriptors[params.ClockTrigger]
	test.ExpectFailure(t, params.Gate(params.Sample([]float32{nan}, c, 0)))

	// infinities are clamped to the range
	inf := float32(math.Inf(1))
	test.ExpectEquality(t, params.Sample([]float32{inf}, d, 0), 1e9)
	test.ExpectEquality(t, params.Sample([]float32{-inf}, d, 0), 1)

	test.ExpectEquality(t, params.Count(nan), 0)

	var blk params.Block
	blk[params.AttackAfterTicks] = []float32{nan}
	blk[params.TicksOnReset] = []float32{nan}
	s := params.NewSampler(&blk, false, false)
	test.ExpectEquality(t, s.Thresholds(0).AttackAfterTicks, 1)
	test.ExpectEquality(t, s.ResetTargets(0).TicksOnReset, 0)
}

func TestGate(t *testing.T) {
	test.ExpectFailure(t, params.Gate(0))
	test.ExpectSuccess(t, params.Gate(1))
	test.ExpectSuccess(t, params.Gate(-1))
	test.ExpectSuccess(t, params.Gate(0.001))
}

func TestCount(t *testing.T) {
	test.ExpectEquality(t, params.Count(3), 3)
	test.ExpectEquality(t, params.Count(3.9), 3)
	test.ExpectEquality(t, params.Count(-2.5), -2)
}

func TestSampler(t *testing.T) {
	var blk params.Block
	blk[params.ClockTrigger] = []float32{0, 1, 0, 1}
	blk[params.ResetTrigger] = []float32{0}
	blk[params.AttackAfterTicks] = []float32{3}
	blk[params.TicksOnReset] = []float32{-2, -2, -2, -3}

	s := params.NewSampler(&blk, false, false)
	test.ExpectFailure(t, s.Clock(0))
	test.ExpectSuccess(t, s.Clock(1))
	test.ExpectFailure(t, s.Reset(3))

	th := s.Thresholds(2)
	test.ExpectEquality(t, th.AttackAfterTicks, 3)
	test.ExpectEquality(t, th.ReleaseAfterTocks, 1)

	rt := s.ResetTargets(3)
	test.ExpectEquality(t, rt.TicksOnReset, -3)
	test.ExpectEquality(t, rt.TocksOnReset, 0)
}

func TestSamplerOverride(t *testing.T) {
	var blk params.Block
	blk[params.ClockTrigger] = []float32{0, 0, 0, 0}
	blk[params.ResetTrigger] = []float32{0, 0, 0, 0}

	s := params.NewSampler(&blk, true, false)
	for i := range 4 {
		test.ExpectSuccess(t, s.Clock(i), i)
		test.ExpectFailure(t, s.Reset(i), i)
	}

	s = params.NewSampler(&blk, false, true)
	for i := range 4 {
		test.ExpectFailure(t, s.Clock(i), i)
		test.ExpectSuccess(t, s.Reset(i), i)
	}
}

func TestValidate(t *testing.T) {
	var blk params.Block
	test.ExpectSuccess(t, blk.Validate(128))

	blk[params.ClockTrigger] = make([]float32, 128)
	blk[params.ResetTrigger] = []float32{1}
	test.ExpectSuccess(t, blk.Validate(128))

	blk[params.TocksOnReset] = make([]float32, 64)
	err := blk.Validate(128)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, params.InvalidBufferLength))
}

func TestLookup(t *testing.T) {
	id, ok := params.Lookup("releaseAfterTocks")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, id, params.ReleaseAfterTocks)
	test.ExpectEquality(t, id.String(), "releaseAfterTocks")

	_, ok = params.Lookup("foo")
	test.ExpectFailure(t, ok)
}
