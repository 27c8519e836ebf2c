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

package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/reactivesynth/clockdivider/terminal/easyterm/ansi"
)

// Write the entries to io.Writer as a table. The sampleRate is used to convert
// intervals to tempo. If color is true the value column is coloured with ANSI
// pens.
func (tr *Tracker) Write(w io.Writer, sampleRate int, color bool) error {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%12s  %-6s  %-5s  %10s  %9s\n", "sample", "gate", "value", "interval", "bpm"))

	for _, e := range tr.Copy() {
		value := "low"
		if e.Value {
			value = "high"
		}
		if color {
			pen := ansi.Pens["red"]
			if e.Value {
				pen = ansi.Pens["green"]
			}
			value = fmt.Sprintf("%s%-5s%s", pen, value, ansi.NormalPen)
		} else {
			value = fmt.Sprintf("%-5s", value)
		}

		s.WriteString(fmt.Sprintf("%12d  %-6s  %s", e.Sample, e.Source, value))
		if e.Interval > 0 {
			s.WriteString(fmt.Sprintf("  %10d  %9.2f", e.Interval, BPM(e.Interval, sampleRate, 1)))
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
