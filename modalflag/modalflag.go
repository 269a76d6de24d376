// This file is part of Sounder.
//
// Sounder is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sounder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sounder.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes), allowing different flags for each mode.
//
// Basic usage:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "VERSION")
//
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	...
//	}
//
// The first sub-mode in the list given to AddSubModes() is the default mode,
// selected when no mode is named on the command line. Sub-mode comparison is
// case insensitive. After selecting a mode, call NewMode(), add the flags for
// that mode and Parse() again.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides a convenient method of handling command line arguments. The
// Output field should be specified before calling Parse() or you will not
// see any help messages.
type Modes struct {
	// where to print output (help messages etc.)
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call
	// to NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function. updated by
	// each successive Parse() as arguments are consumed
	args []string

	// the most recent list of sub-modes specified with AddSubModes()
	subModes []string

	// the series of sub-modes found during successive calls to Parse()
	path []string

	// displayed in addition to the flag defaults when help is requested
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs initialises the Modes struct with a list of arguments (from the
// command line, most usually).
func (md *Modes) NewArgs(args []string) {
	md.args = args

	// by definition, a newly initialised Modes struct begins with a new mode
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp to be displayed alongside the regular help on available
// flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added before
	// the Parse() then the Mode() function says which one was selected.
	ParseContinue ParseResult = iota

	// help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the current layer of arguments. Help messages are handled
// automatically; the ParseHelp result means one has already been printed.
func (md *Modes) Parse() (ParseResult, error) {
	md.flags.SetOutput(md.output())

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// arguments not consumed by this layer of flags
	rem := md.flags.Args()

	if len(md.subModes) > 0 {
		// assume the default sub-mode until the argument matches a listed one
		mode := md.subModes[0]
		if len(rem) > 0 {
			arg := strings.ToUpper(rem[0])
			for i := range md.subModes {
				if md.subModes[i] == arg {
					mode = arg
					rem = rem[1:]
					break // for loop
				}
			}
		}
		md.path = append(md.path, mode)
	}

	// the next layer of parsing starts from whatever is left
	md.args = rem

	return ParseContinue, nil
}

func (md *Modes) output() io.Writer {
	if md.Output == nil {
		return io.Discard
	}
	return md.Output
}

func (md *Modes) help() {
	if len(md.subModes) > 0 {
		fmt.Fprintf(md.output(), "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.output(), "  default: %s\n", md.subModes[0])
	}
	if md.additionalHelp != "" {
		fmt.Fprintf(md.output(), "%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments left after a call to Parse() ie.
// arguments that aren't flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered argument that isn't a flag or a listed
// sub-mode. An empty string if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddSubModes to the list of sub-modes for the next Parse(). The first
// sub-mode in the list is the default sub-mode.
func (md *Modes) AddSubModes(subModes ...string) {
	md.subModes = append(md.subModes, subModes...)
	for i := range md.subModes {
		md.subModes[i] = strings.ToUpper(md.subModes[i])
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddUint64 flag for the next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
