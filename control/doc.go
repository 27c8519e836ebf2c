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

// Package control implements the message port between the host (the control
// plane) and the block processor.
//
// The host posts messages with Port.Post(), which never blocks. The Port.Run()
// function services those messages on its own goroutine: it sets the manual
// override latches, binds the compute module and forwards the notices produced
// by the block processor to the channel returned by Port.Outbound().
//
// Binding is attempted for the first Bind message only. If it fails a single
// BindFailed message is sent and the processor continues to produce silence.
package control
