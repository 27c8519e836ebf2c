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

// Frequency returns the frequency in Hz of a gate that rises every interval
// samples.
func Frequency(interval int64, sampleRate int) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(sampleRate) / float64(interval)
}

// BPM returns the tempo in beats per minute of a gate that rises every
// interval samples, assuming pulsesPerBeat rising edges per beat.
//
// Common values of pulsesPerBeat are 1 for a quarter note clock, 4 for a
// sixteenth note clock and 24 for a MIDI clock.
func BPM(interval int64, sampleRate int, pulsesPerBeat int) float64 {
	if pulsesPerBeat <= 0 {
		pulsesPerBeat = 1
	}
	return Frequency(interval, sampleRate) * 60 / float64(pulsesPerBeat)
}

// Ratio returns the division ratio between an output interval and a clock
// interval. For example, a clock that rises every 100 samples and an output
// that rises every 400 samples is a ratio of 4.
func Ratio(output int64, clock int64) float64 {
	if clock <= 0 {
		return 0
	}
	return float64(output) / float64(clock)
}
