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

// Package divider implements the clock divider state machine.
//
// The divider counts rising edges of a clock gate. While the output is low it
// counts "ticks" and when the number of ticks reaches the attack threshold the
// output goes high. While the output is high it counts "tocks" and when the
// number of tocks reaches the release threshold the output goes low again:
//
//	attackAfterTicks=3 releaseAfterTocks=2
//
//	clock   _|‾|_|‾|_|‾|_|‾|_|‾|_|‾|_
//	output  _______|‾‾‾‾‾‾‾|_________
//
// A rising edge on the reset gate sets the two counters to the reset targets
// and forces the output low. The reset targets can be negative, in which case
// additional ticks are required before the output goes high.
//
// The Step() function is called once per sample. It does not allocate and it
// does not block so it is safe to call from a real-time audio thread.
//
// Before the first sample a Divider processes, a reset edge is synthesised.
// This puts every divider into a well defined phase regardless of the state
// of the reset input at the time.
package divider
