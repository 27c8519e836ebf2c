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

package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/logger"
)

// BitDepth of the WAV file.
const BitDepth = 16

// format tag for uncompressed PCM in a WAV header
const pcmFormat = 1

// WavWriter implements the engine.Sink interface.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder

	// interleaved output for one block. reused for every block
	buf *audio.IntBuffer

	channels int
	frames   int64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int, channels int) (*WavWriter, error) {
	if channels < 1 {
		return nil, curated.Errorf("wavwriter: %v", "number of channels must be at least one")
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	ww := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, BitDepth, channels, pcmFormat),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: channels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: BitDepth,
		},
		channels: channels,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return ww, nil
}

// Consume implements the engine.Sink interface. Channels beyond the number the
// WavWriter was created with are ignored. Missing channels are written as
// silence.
func (ww *WavWriter) Consume(_ int64, outputs [][]float32) error {
	if len(outputs) == 0 {
		return nil
	}

	n := len(outputs[0])
	if cap(ww.buf.Data) < n*ww.channels {
		ww.buf.Data = make([]int, n*ww.channels)
	}
	ww.buf.Data = ww.buf.Data[:n*ww.channels]

	scale := float32(audio.IntMaxSignedValue(BitDepth))

	for i := 0; i < n; i++ {
		for c := 0; c < ww.channels; c++ {
			var v float32
			if c < len(outputs) && i < len(outputs[c]) {
				v = outputs[c][i]
			}
			ww.buf.Data[i*ww.channels+c] = int(v * scale)
		}
	}

	if err := ww.enc.Write(ww.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	ww.frames += int64(n)

	return nil
}

// Frames returns the number of frames written so far.
func (ww *WavWriter) Frames() int64 {
	return ww.frames
}

// Close completes the WAV file.
func (ww *WavWriter) Close() (rerr error) {
	defer func() {
		err := ww.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if err := ww.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d frames written to %s", ww.frames, ww.filename)

	return nil
}
