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
	"os/signal"

	"github.com/klauspost/cpuid"
	"github.com/reactivesynth/clockdivider/logger"
	"github.com/reactivesynth/clockdivider/modalflag"
	"github.com/reactivesynth/clockdivider/version"
	"golang.org/x/term"
)

const logTag = "clockdivider"

// exit values returned to the operating system
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc cancels the context. PLAY mode also reads the interrupt key
	// directly while the terminal is in cbreak mode
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitVal := launch(ctx, os.Args[1:], os.Stdout)

	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RENDER", "PLAY", "TRACE")
	md.AdditionalHelp(fmt.Sprintf("%s divides a clock gate into a slower gate.", version.ApplicationName))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RENDER":
		err = render(ctx, md, output)

	case "PLAY":
		err = play(ctx, md, output)

	case "TRACE":
		err = trace(ctx, md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// isTerminal returns true if the writer is connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// setLogEcho directs the central log to the output if echo is true. Entries
// are coloured if the output is a terminal.
func setLogEcho(output io.Writer, echo bool) {
	if !echo {
		logger.SetEcho(nil, false)
		return
	}
	if isTerminal(output) {
		logger.SetEcho(logger.NewColorizer(output), false)
	} else {
		logger.SetEcho(output, false)
	}
}

// logBanner writes the version and host CPU details to the log.
func logBanner() {
	logger.Log(logger.Allow, logTag, version.String())
	logger.Logf(logger.Allow, logTag, "%s (%d physical cores, %d logical)",
		cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
}
