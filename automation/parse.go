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

import (
	"strconv"
	"strings"

	"github.com/reactivesynth/clockdivider/curated"
)

// InvalidSource is returned by Parse() for a description that can not be
// understood.
const InvalidSource = "automation: invalid source: %s"

// Parse a textual description of a Source. See package documentation for the
// supported forms. A plain number is the same as the const form.
func Parse(desc string) (Source, error) {
	desc = strings.TrimSpace(desc)

	kind, args, found := strings.Cut(desc, ":")
	if !found {
		v, err := strconv.ParseFloat(desc, 32)
		if err != nil {
			return nil, curated.Errorf(InvalidSource, desc)
		}
		return Constant(v), nil
	}

	switch strings.ToLower(kind) {
	case "const":
		v, err := strconv.ParseFloat(args, 32)
		if err != nil {
			return nil, curated.Errorf(InvalidSource, desc)
		}
		return Constant(v), nil

	case "every":
		f := strings.Split(args, ":")
		if len(f) > 3 {
			return nil, curated.Errorf(InvalidSource, desc)
		}
		var v [3]int64
		for i := range f {
			n, err := strconv.ParseInt(strings.TrimSpace(f[i]), 10, 64)
			if err != nil || n < 0 {
				return nil, curated.Errorf(InvalidSource, desc)
			}
			v[i] = n
		}
		if v[0] == 0 {
			return nil, curated.Errorf(InvalidSource, desc)
		}
		return Every{Period: v[0], Width: v[1], Offset: v[2]}, nil

	case "at":
		var at []int64
		for _, s := range strings.Split(args, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil || n < 0 {
				return nil, curated.Errorf(InvalidSource, desc)
			}
			at = append(at, n)
		}
		return NewPulses(1, at...), nil
	}

	return nil, curated.Errorf(InvalidSource, desc)
}
