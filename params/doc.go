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

// Package params describes the six automatable inputs of the clock divider
// and resolves their value for any sample of a block.
//
// Each input arrives from the host as a buffer of float32 values. A buffer of
// length one holds a single value for the whole block. A buffer the length of
// the render quantum carries one value per sample (a-rate automation). An
// empty buffer means the host supplied nothing and the default from the
// parameter's Descriptor is used.
//
// Every value is clamped to the Descriptor's range. The trigger inputs are
// then interpreted as gates: any non-zero value is "high".
//
// The Sampler type is used by the block processor. It is a value type and is
// built on the stack for every block, so it never allocates.
package params
