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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/debugger/terminal"
	"github.com/seaward/sounder/logger"
)

// command keywords.
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdTrigger = "TRIGGER"
	cmdRx      = "RX"
	cmdTone    = "TONE"
	cmdBus     = "BUS"
	cmdState   = "STATE"
	cmdLast    = "LAST"
	cmdHash    = "HASH"
	cmdLog     = "LOG"
	cmdMemViz  = "MEMVIZ"
	cmdReset   = "RESET"
	cmdQuit    = "QUIT"
	cmdHelp    = "HELP"
)

var helpText = []string{
	"STEP [n]        step n derived-clock ticks (default 1)",
	"RUN [n]         run n derived-clock ticks (default one full window)",
	"TRIGGER         pulse the trigger input for one tick",
	"RX <0|1>        set the receiver input level",
	"TONE <ON|OFF>   set the tone enable input",
	"BUS <n> <0|1>   set control-bus line n",
	"STATE           print the instrument state",
	"LAST [n]        print the n most recent output samples (default 10)",
	"HASH            print the rolling hash of the output stream",
	"LOG             print the contents of the central logger",
	"MEMVIZ <file>   write the instrument state as a graphviz dot file",
	"RESET           return the instrument to its power-on state",
	"QUIT            leave the debugger",
}

func parseLevel(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, curated.Errorf("debugger: level must be 0 or 1, not %s", s)
}

// parseCommand tokenises one line of input and runs the command it names.
// Empty input steps a single tick, as a convenience for repeated stepping.
func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(strings.ToUpper(input))
	if len(tokens) == 0 {
		return dbg.step(1)
	}

	arg := func(def uint64) (uint64, error) {
		if len(tokens) < 2 {
			return def, nil
		}
		n, err := strconv.ParseUint(tokens[1], 10, 64)
		if err != nil {
			return 0, curated.Errorf("debugger: bad number: %s", tokens[1])
		}
		return n, nil
	}

	switch tokens[0] {
	case cmdStep:
		n, err := arg(1)
		if err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleEcho, fmt.Sprintf("%s %d", cmdStep, n))
		return dbg.step(n)

	case cmdRun:
		n, err := arg(1000001)
		if err != nil {
			return err
		}
		return dbg.step(n)

	case cmdTrigger:
		dbg.snd.Pinger.Input.Trigger = true
		if err := dbg.step(1); err != nil {
			return err
		}
		dbg.snd.Pinger.Input.Trigger = false
		return nil

	case cmdRx:
		if len(tokens) != 2 {
			return curated.Errorf("debugger: %s needs a level argument", cmdRx)
		}
		level, err := parseLevel(tokens[1])
		if err != nil {
			return err
		}
		dbg.snd.Pinger.Input.RxIn = level
		return nil

	case cmdTone:
		if len(tokens) != 2 {
			return curated.Errorf("debugger: %s needs ON or OFF", cmdTone)
		}
		switch tokens[1] {
		case "ON":
			dbg.snd.Pinger.Input.ToneEnable = true
		case "OFF":
			dbg.snd.Pinger.Input.ToneEnable = false
		default:
			return curated.Errorf("debugger: %s needs ON or OFF", cmdTone)
		}
		return nil

	case cmdBus:
		if len(tokens) != 3 {
			return curated.Errorf("debugger: %s needs a line number and a level", cmdBus)
		}
		line, err := strconv.Atoi(tokens[1])
		if err != nil || line < 0 || line > 2 {
			return curated.Errorf("debugger: bus line must be 0, 1 or 2")
		}
		level, err := parseLevel(tokens[2])
		if err != nil {
			return err
		}
		dbg.snd.Pinger.Input.Bus[line] = level
		return nil

	case cmdState:
		dbg.printState()
		return nil

	case cmdLast:
		n, err := arg(10)
		if err != nil {
			return err
		}
		for _, smp := range dbg.rec.Last(int(n)) {
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%8d: %s", smp.Tick, smp.String()))
		}
		return nil

	case cmdHash:
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.rec.String())
		return nil

	case cmdLog:
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				dbg.term.TermPrintLine(terminal.StyleLog, e.String())
			}
		})
		return nil

	case cmdMemViz:
		if len(tokens) != 2 {
			return curated.Errorf("debugger: %s needs a filename", cmdMemViz)
		}
		// use the original input for the filename, not the upper-cased copy
		return dbg.memviz(strings.Fields(input)[1])

	case cmdReset:
		dbg.snd.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "instrument reset")
		return nil

	case cmdQuit:
		dbg.running = false
		return nil

	case cmdHelp:
		for _, s := range helpText {
			dbg.term.TermPrintLine(terminal.StyleHelp, s)
		}
		return nil
	}

	return curated.Errorf("debugger: unknown command: %s", tokens[0])
}
