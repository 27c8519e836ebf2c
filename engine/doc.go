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

// Package engine hosts a processor.Processor outside of an audio graph. For
// each block it fills the parameter buffers from automation sources, runs the
// block processor and passes the output to any number of sinks.
//
// The engine is used for offline rendering, where Run() drives blocks as
// quickly as possible, and for real-time playback, where the audio device
// pulls blocks by calling Step().
package engine
