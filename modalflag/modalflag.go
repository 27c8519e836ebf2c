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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// arguments not yet consumed by a mode selection
	args []string

	// flags and sub-modes for the next call to Parse(). replaced by NewMode()
	flags    *flag.FlagSet
	subModes []string
	help     string

	// every mode selected so far, outermost first
	path []string
}

func (md *Modes) String() string {
	return strings.Join(md.path, "/")
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode discards the flags and sub-modes of the previous Parse() so that
// the flags of the selected mode can be added.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.help = ""
}

// AdditionalHelp sets text to be printed after the list of flags and
// sub-modes.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes to the list of sub-modes for the next call to Parse(). The first
// sub-mode is the default. Comparisons are case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the arguments could not be parsed. the error is the second return value
	ParseError
)

// Parse the arguments with the flags added since the last NewMode(). If
// sub-modes have been added the mode is selected from the first argument
// after the flags, or the default is used. An unrecognised flag also selects
// the default sub-mode, leaving the flag for the sub-mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	var usage strings.Builder
	md.flags.SetOutput(&usage)

	err := md.flags.Parse(md.args)
	switch {
	case err == flag.ErrHelp:
		md.printHelp(usage.String())
		return ParseHelp, nil

	case err != nil && len(md.subModes) == 0:
		return ParseError, err

	case err != nil:
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		md.path = append(md.path, md.selectMode())
	}

	return ParseContinue, nil
}

// selectMode consumes the first argument if it names a sub-mode. otherwise
// the default sub-mode is returned.
func (md *Modes) selectMode() string {
	if len(md.args) > 0 {
		arg := strings.ToUpper(md.args[0])
		for _, m := range md.subModes {
			if m == arg {
				md.args = md.args[1:]
				return m
			}
		}
	}
	return md.subModes[0]
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
