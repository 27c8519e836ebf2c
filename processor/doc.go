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

// Package processor drives a divider.Divider over a block of samples. It is
// the only part of the system that runs on the real-time audio thread.
//
// The Process() function resolves the parameters for each sample of the
// block, steps the divider and writes the gate into the output channels. It
// never allocates, never blocks and never takes a lock. Communication with the
// control plane happens through atomic values and a notifications.Queue.
//
// Until a divider has been bound with Bind() every call to Process() writes
// silence and leaves the divider untouched.
package processor
