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

//go:build !headless

package playback

import (
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/engine"
	"github.com/reactivesynth/clockdivider/logger"
)

// Player sends a Stream to the audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	stream *Stream

	started bool

	// only for setup and control operations. the audio device reads the
	// stream without a lock
	mutex sync.Mutex
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The bufferSize is the latency requested from the audio device. A value of
// zero selects the device's default.
func NewPlayer(sampleRate int, channels int, bufferSize time.Duration) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: max(channels, 1),
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	<-ready

	logger.Logf(logger.Allow, "playback", "audio device ready: %dHz, %d channels", sampleRate, op.ChannelCount)

	p := &Player{
		ctx:    ctx,
		stream: NewStream(op.ChannelCount),
	}
	p.player = ctx.NewPlayer(p.stream)

	return p, nil
}

// Start playing the output of the engine.
func (p *Player) Start(e *engine.Engine) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.stream.Attach(e)
	if !p.started {
		p.player.Play()
		p.started = true
	}
}

// Stop playing. The stream can be restarted with Start().
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.started {
		p.player.Pause()
		p.started = false
	}
}

// Err returns the first error encountered by the stream or the audio
// device.
func (p *Player) Err() error {
	if err := p.stream.Err(); err != nil {
		return err
	}
	if err := p.ctx.Err(); err != nil {
		return curated.Errorf("playback: %v", err)
	}
	return nil
}

// Close the player. The audio context remains open for the lifetime of the
// program.
func (p *Player) Close() error {
	p.Stop()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	if err != nil {
		return curated.Errorf("playback: %v", err)
	}
	return nil
}
