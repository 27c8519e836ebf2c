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

// Package playback plays the output of an engine.Engine through the host's
// audio device in real time.
//
// The audio device pulls data from a Stream, which steps the engine whenever
// it needs another block. The Stream's Read() function runs on the audio
// device's goroutine and so the engine it drives should not use automation
// sources that allocate or block.
//
// Building with the "headless" tag removes the dependency on the audio device.
// In that case NewPlayer() always returns an error.
package playback
