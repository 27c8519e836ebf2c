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

package soundload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/reactivesynth/clockdivider/automation"
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/logger"
)

// Sentinel error patterns.
const (
	UnsupportedFormat = "soundload: unsupported format: %s"
	DecodeError       = "soundload: %s: %v"
)

const logTag = "soundload"

// PCM is mono audio data normalised to the range -1.0 to 1.0.
type PCM struct {
	SampleRate int

	// duration in seconds
	Duration float64

	Data []float32
}

// Load the named file. The format is decided by the filename extension.
func Load(filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	logger.Logf(logger.Allow, logTag, "loading %s", filename)

	return Decode(f, filepath.Ext(filename))
}

// Decode data from the io.ReadSeeker. The ext argument is a filename
// extension indicating the format of the data (eg. ".wav").
func Decode(r io.ReadSeeker, ext string) (PCM, error) {
	var p PCM
	var err error

	switch strings.ToLower(ext) {
	case ".wav":
		p, err = decodeWAV(r)
	case ".mp3":
		p, err = decodeMP3(r)
	default:
		return PCM{}, curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return PCM{}, err
	}

	logger.Logf(logger.Allow, logTag, "sample rate: %dHz", p.SampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.Duration)

	return p, nil
}

func decodeWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return PCM{}, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, "wav", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := max(int(dec.NumChans), 1)

	// copy first channel only of data stream
	p := PCM{
		SampleRate: int(dec.SampleRate),
		Data:       make([]float32, 0, len(floatBuf.Data)/chans),
	}
	for i := 0; i < len(floatBuf.Data); i += chans {
		p.Data = append(p.Data, floatBuf.Data[i])
	}

	dur, err := dec.Duration()
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, "wav", err)
	}
	p.Duration = dur.Seconds()

	return p, nil
}

func decodeMP3(r io.Reader) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, curated.Errorf(DecodeError, "mp3", err)
	}

	p := PCM{
		SampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16bit little endian with two channels.
	// each sample is four bytes and the left channel is the first two
	if l := dec.Length(); l > 0 {
		p.Data = make([]float32, 0, l/4)
	}

	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.Data = append(p.Data, float32(v)/32768)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return PCM{}, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	if p.SampleRate > 0 {
		p.Duration = float64(len(p.Data)) / float64(p.SampleRate)
	}

	return p, nil
}

// Automation creates an automation source from the PCM data. The gate is high
// wherever the absolute value of the data exceeds the threshold. If the sample
// rate of the data differs from the sampleRate argument the data is resampled
// by repeating or skipping samples.
func (p PCM) Automation(threshold float32, loop bool, sampleRate int) automation.PCM {
	a := automation.PCM{
		Data:      p.Data,
		Threshold: threshold,
		Loop:      loop,
	}

	if sampleRate <= 0 || p.SampleRate <= 0 || sampleRate == p.SampleRate {
		return a
	}

	logger.Logf(logger.Allow, logTag, "resampling from %dHz to %dHz", p.SampleRate, sampleRate)

	n := int(int64(len(p.Data)) * int64(sampleRate) / int64(p.SampleRate))
	a.Data = make([]float32, n)
	for i := range a.Data {
		a.Data[i] = p.Data[int64(i)*int64(p.SampleRate)/int64(sampleRate)]
	}

	return a
}
