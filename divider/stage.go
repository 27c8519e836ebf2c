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

package divider

// Stage classifies a gate reading against the reading of the previous sample.
type Stage int

// List of valid Stage values.
const (
	Closed Stage = iota
	Opening
	Open
	Closing
)

func (s Stage) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return "unknown"
}

// StageOf returns the stage of a gate given its previous and current
// readings.
func StageOf(prev, cur bool) Stage {
	switch {
	case !prev && cur:
		return Opening
	case prev && cur:
		return Open
	case prev && !cur:
		return Closing
	}
	return Closed
}

// rising is true for a 0 -> 1 transition.
func rising(prev, cur bool) bool {
	return !prev && cur
}
