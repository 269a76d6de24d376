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

// Package debugger is an interactive harness around the instrument. The
// debugger steps the derived clock by hand, pokes the input pins between
// steps and inspects pin history through the attached trace recorder.
package debugger

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/debugger/terminal"
	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/logger"
	"github.com/seaward/sounder/trace"
)

// Debugger is the basic debugging frontend for the instrument.
type Debugger struct {
	snd  *hardware.Sounder
	rec  *trace.Recorder
	term terminal.Terminal

	running bool
}

// NewDebugger creates a debugger around a new instance of the instrument.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		snd:  hardware.NewSounder(),
		rec:  trace.NewRecorder(0),
		term: term,
	}

	dbg.snd.Attach(dbg.rec)

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the command loop. Returns when the user quits or input is
// exhausted.
func (dbg *Debugger) Start() error {
	defer dbg.term.CleanUp()

	dbg.running = true
	prompt := terminal.Prompt{Content: "[sounder] "}

	for dbg.running {
		s, err := dbg.term.TermRead(prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				return nil
			}
			return err
		}

		if err := dbg.parseCommand(s); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// step the instrument by the given number of derived-clock ticks and report
// the resulting state.
func (dbg *Debugger) step(numTicks uint64) error {
	if err := dbg.snd.RunForTicks(numTicks); err != nil {
		return err
	}
	dbg.printState()
	return nil
}

func (dbg *Debugger) printState() {
	last := dbg.rec.Last(1)
	if len(last) == 1 {
		dbg.term.TermPrintLine(terminal.StyleInstrument, last[0].String())
	}
	dbg.term.TermPrintLine(terminal.StyleInstrument, dbg.snd.Pinger.String())
}

// memviz writes a graph of the instrument's internal state in graphviz dot
// format.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("debugger: %v", err)
		}
	}()

	memviz.Map(f, dbg.snd.Pinger)
	logger.Logf("debugger", "state graph written to %s", filename)

	return nil
}
