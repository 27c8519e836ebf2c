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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/reactivesynth/clockdivider/control"
	"github.com/reactivesynth/clockdivider/curated"
	"github.com/reactivesynth/clockdivider/divider"
	"github.com/reactivesynth/clockdivider/engine"
	"github.com/reactivesynth/clockdivider/logger"
	"github.com/reactivesynth/clockdivider/modalflag"
	"github.com/reactivesynth/clockdivider/notifications"
	"github.com/reactivesynth/clockdivider/paths"
	"github.com/reactivesynth/clockdivider/playback"
	"github.com/reactivesynth/clockdivider/preferences"
	"github.com/reactivesynth/clockdivider/processor"
	"github.com/reactivesynth/clockdivider/terminal/easyterm"
	"github.com/reactivesynth/clockdivider/tracker"
	"github.com/reactivesynth/clockdivider/wavwriter"
)

// session is the engine and its resources, as prepared for every mode.
type session struct {
	prefs   *preferences.Preferences
	sources *sourceSet
	proc    *processor.Processor
	eng     *engine.Engine

	sampleRate int
	blocks     int
}

func (s *session) Close() {
	s.sources.Close()
}

// newSession prepares the processor and engine. If bind is true the native
// compute module is bound immediately. PLAY mode binds through the control
// port instead.
func newSession(a *dividerArgs, bind bool) (*session, error) {
	p, err := a.preferences()
	if err != nil {
		return nil, err
	}

	s := &session{
		prefs:      p,
		sampleRate: p.SampleRate.Get().(int),
	}

	s.sources, err = a.sources(p, s.sampleRate)
	if err != nil {
		return nil, err
	}

	quantum := p.Quantum.Get().(int)
	s.proc = processor.NewProcessor(quantum, notifications.NewQueue(p.QueueSize.Get().(int)))
	s.eng = engine.NewEngine(s.proc, p.Channels.Get().(int), s.sources.sources)
	s.blocks = engine.BlocksFor(*a.seconds, s.sampleRate, quantum)

	if bind {
		if err := s.proc.Bind(divider.Native{}); err != nil {
			s.Close()
			return nil, err
		}
	}

	return s, nil
}

func render(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	a := addDividerArgs(md, 4.0)
	out := md.AddString("out", "", "filename of rendered WAV file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	a.start(md)

	s, err := newSession(a, true)
	if err != nil {
		return err
	}
	defer s.Close()

	if *out == "" {
		*out = paths.UniqueFilename("render", "", "wav")
	}

	ww, err := wavwriter.New(*out, s.sampleRate, len(s.eng.Outputs()))
	if err != nil {
		return err
	}
	s.eng.AddSink(ww)

	err = s.eng.Run(ctx, s.blocks)
	if cerr := ww.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! rendered %d frames to %s\n", ww.Frames(), *out)

	return nil
}

func trace(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	a := addDividerArgs(md, 1.0)
	maxEntries := md.AddInt("entries", tracker.DefaultMaxEntries, "maximum number of entries in the trace")
	memvizFile := md.AddString("memviz", "", "write structure of the divider state and trace to a dot file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	a.start(md)

	s, err := newSession(a, true)
	if err != nil {
		return err
	}
	defer s.Close()

	tr := tracker.NewTracker(*maxEntries)
	s.eng.AddSink(tr)
	s.eng.SetNotify(tr)

	if err := s.eng.Run(ctx, s.blocks); err != nil {
		return err
	}

	if err := tr.Write(output, s.sampleRate, isTerminal(output)); err != nil {
		return err
	}

	if *memvizFile != "" {
		st, _ := s.proc.Snapshot()
		entries := tr.Copy()
		if err := dumpStructure(*memvizFile, &st, &entries); err != nil {
			return err
		}
		fmt.Fprintf(output, "! structure written to %s\n", *memvizFile)
	}

	return nil
}

// dumpStructure writes a graphviz representation of the values to the named
// file.
func dumpStructure(filename string, values ...any) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	memviz.Map(f, values...)

	return nil
}

func play(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	a := addDividerArgs(md, 0.0)
	latency := md.AddDuration("latency", 50*time.Millisecond, "requested audio device latency")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	a.start(md)

	s, err := newSession(a, false)
	if err != nil {
		return err
	}
	defer s.Close()

	if len(s.sources.lua) > 0 {
		logger.Log(logger.Allow, logTag, "lua sources allocate memory and may cause audio dropouts")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *a.seconds > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, time.Duration(*a.seconds*float64(time.Second)))
		defer tcancel()
	}

	port := control.NewPort(s.proc, s.prefs.QueueSize.Get().(int))
	portErr := make(chan error, 1)
	go func() {
		portErr <- port.Run(ctx)
	}()

	if !port.Post(control.Message{Type: control.Bind, Module: divider.Native{}}) {
		return curated.Errorf("cannot bind compute module")
	}

	player, err := playback.NewPlayer(s.sampleRate, len(s.eng.Outputs()), *latency)
	if err != nil {
		return err
	}
	defer player.Close()
	player.Start(s.eng)

	var term easyterm.Terminal
	var keys <-chan byte
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		logger.Logf(logger.Allow, logTag, "keyboard control unavailable: %v", err)
	} else {
		if err := term.CBreakMode(); err != nil {
			return err
		}
		defer term.CanonicalMode()
		keys = term.Keys(ctx)
		term.Print("c: toggle manual clock, r: toggle manual reset, q: quit\r\n")
	}

	err = playLoop(ctx, cancel, port, player, keys, output)

	cancel()
	if perr := <-portErr; err == nil && perr != nil && perr != context.Canceled && perr != context.DeadlineExceeded {
		err = perr
	}

	return err
}

// playLoop services keyboard input and messages from the core until the
// context is done.
func playLoop(ctx context.Context, cancel context.CancelFunc, port *control.Port,
	player *playback.Player, keys <-chan byte, output io.Writer) error {

	var manualClock, manualReset bool

	tck := time.NewTicker(100 * time.Millisecond)
	defer tck.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-tck.C:
			if err := player.Err(); err != nil {
				return err
			}

		case msg := <-port.Outbound():
			switch msg.Type {
			case control.BindFailed:
				return msg.Err
			case control.ModuleReady:
				logger.Log(logger.Allow, logTag, "compute module ready")
			default:
				fmt.Fprintf(output, "%s\r\n", msg)
			}

		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch k {
			case 'c', 'C':
				manualClock = !manualClock
				port.Post(control.Message{Type: control.ManualClockTrigger, Value: manualClock})
			case 'r', 'R':
				manualReset = !manualReset
				port.Post(control.Message{Type: control.ManualResetTrigger, Value: manualReset})
			case 'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEsc:
				cancel()
			}
		}
	}
}
