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

package modalflag

import (
	"fmt"
	"strings"
)

// printHelp amends the usage text produced by the flag package with the name
// of the current mode, the list of sub-modes and the additional help.
func (md *Modes) printHelp(usage string) {
	if md.Output == nil {
		return
	}

	heading, flags, _ := strings.Cut(usage, "\n")
	if mode := md.String(); mode != "" {
		heading = fmt.Sprintf("%s for %s mode", heading, mode)
	}
	fmt.Fprintln(md.Output, heading)
	fmt.Fprint(md.Output, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.help != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.help)
	}
}
