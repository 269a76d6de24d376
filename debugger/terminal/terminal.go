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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

// Sentinal error returned by TermRead() when the user has interrupted input.
const (
	UserInterrupt = "user interrupt"
)

// Style is used by TermPrintLine() to hint at how the line should be
// displayed. Implementations are free to ignore the hint.
type Style int

// Valid Style values.
const (
	// input as the debugger has understood it, echoed back to the user.
	// terminals that display input as it is typed should ignore lines with
	// this style
	StyleEcho Style = iota

	// information from the debugger about the command just run
	StyleFeedback

	// the state of the instrument
	StyleInstrument

	// help text
	StyleHelp

	// lines from the central logger
	StyleLog

	// error messages. these are displayed even when the terminal has been
	// silenced
	StyleError
)

// Prompt is the text shown when the terminal is waiting for input.
type Prompt struct {
	Content string
}

func (pr Prompt) String() string {
	return pr.Content
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one line of input, without the line terminator. The
	// prompt is displayed first if the implementation is interactive.
	TermRead(prompt Prompt) (string, error)

	// IsInteractive returns true for implementations that expect a user at
	// the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations will need to do
	// anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible. for
	// example, returning the terminal to canonical mode.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}
