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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY", "TRACE")
//	_, _ = md.Parse()
//
// After Parse() the selected mode is returned by Mode(). If the first
// argument after the flags is not one of the listed sub-modes then the first
// sub-mode is used. Sub-mode comparisons are case insensitive.
//
// Calling NewMode() prepares the Modes instance for a new set of flags. The
// flags belonging to the selected mode are added and Parse() called again:
//
//	md.NewMode()
//	out := md.AddString("out", "", "filename of rendered WAV file")
//	_, _ = md.Parse()
//
// Non-flag arguments are returned by RemainingArgs().
//
// Help is printed to the Output writer when the -help flag is present. The
// Parse() function returns ParseHelp in that case and the caller should exit
// without printing anything further.
package modalflag
