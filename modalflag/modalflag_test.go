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

package modalflag_test

import (
	"testing"

	"github.com/seaward/sounder/modalflag"
	"github.com/seaward/sounder/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"scenario.yaml"})
	md.AddSubModes("RUN", "DEBUG", "VERSION")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// no mode named on the command line so the default is selected and the
	// argument is left over
	test.Equate(t, md.Mode(), "RUN")
	test.Equate(t, md.GetArg(0), "scenario.yaml")
}

func TestSubModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"debug", "-term", "plain"})
	md.AddSubModes("RUN", "DEBUG", "VERSION")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "DEBUG")

	// the mode name has been consumed; parse the mode's own flags
	md.NewMode()
	term := md.AddString("term", "color", "terminal type")

	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, *term, "plain")
	test.Equate(t, md.Path(), "DEBUG")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"run", "-wav", "trace.wav", "scenario.yaml"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	wav := md.AddString("wav", "", "wav output file")

	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, *wav, "trace.wav")
	test.Equate(t, md.GetArg(0), "scenario.yaml")
	test.Equate(t, md.GetArg(1), "")
}
