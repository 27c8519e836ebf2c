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

// Package automation provides sources of parameter values for the block
// processor. Each Source fills the buffer for one parameter for one block.
//
// A Source can return a buffer of length one to indicate that the value is
// held for the entire block. Otherwise the returned buffer has one value per
// sample.
//
// Sources can be created directly or from a short textual description with
// Parse(). For example:
//
//	const:3          a held value of 3
//	every:4800       a single sample pulse every 4800 samples
//	every:4800:240   a pulse of 240 samples every 4800 samples
//	at:2,4,6         single sample pulses at the listed sample positions
//
// The PCM source is created from decoded audio (see the soundload package) and
// the Lua source from a script.
package automation
