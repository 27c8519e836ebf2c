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
	"fmt"
	"math"
)

// ID identifies one of the automatable inputs. The value of an ID is the
// index of the input in a Block.
type ID int

// List of valid ID values.
const (
	ClockTrigger ID = iota
	ResetTrigger
	AttackAfterTicks
	ReleaseAfterTocks
	TicksOnReset
	TocksOnReset

	// the number of inputs. not a valid ID
	NumParams
)

func (id ID) String() string {
	if id < 0 || id >= NumParams {
		return fmt.Sprintf("unknown parameter (%d)", int(id))
	}
	return Descriptors[id].Name
}

// Rate is the automation rate of a parameter.
type Rate string

// List of valid Rate values.
const (
	// one value per sample
	ARate Rate = "a-rate"

	// one value per block
	KRate Rate = "k-rate"
)

// Descriptor describes an automatable input.
type Descriptor struct {
	Name    string
	Default float32
	Min     float32
	Max     float32
	Rate    Rate
}

// the largest magnitude of any parameter value
const limit = 1e9

// Descriptors for every parameter, indexed by ID.
var Descriptors = [NumParams]Descriptor{
	ClockTrigger:      {Name: "clockTrigger", Default: 0, Min: -limit, Max: limit, Rate: ARate},
	ResetTrigger:      {Name: "resetTrigger", Default: 0, Min: -limit, Max: limit, Rate: ARate},
	AttackAfterTicks:  {Name: "attackAfterTicks", Default: 1, Min: 1, Max: limit, Rate: ARate},
	ReleaseAfterTocks: {Name: "releaseAfterTocks", Default: 1, Min: 1, Max: limit, Rate: ARate},
	TicksOnReset:      {Name: "ticksOnReset", Default: 0, Min: -limit, Max: limit, Rate: ARate},
	TocksOnReset:      {Name: "tocksOnReset", Default: 0, Min: -limit, Max: limit, Rate: ARate},
}

// Lookup returns the ID for the named parameter.
func Lookup(name string) (ID, bool) {
	for id := range Descriptors {
		if Descriptors[id].Name == name {
			return ID(id), true
		}
	}
	return NumParams, false
}

// Clamp value to the range of the descriptor. NaN is replaced by the default
// value.
func (d Descriptor) Clamp(v float32) float32 {
	if math.IsNaN(float64(v)) {
		return d.Default
	}
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}
