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

// Package notifications carries events from the real-time block processor to
// the control plane.
//
// The real-time path must never block so notices are pushed onto a bounded
// single-producer/single-consumer Queue. If the queue is full the notice is
// dropped and counted. The consumer is expected to drain the queue regularly,
// usually from the control.Port goroutine.
package notifications
