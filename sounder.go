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

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/seaward/sounder/debugger"
	"github.com/seaward/sounder/debugger/terminal"
	"github.com/seaward/sounder/debugger/terminal/colorterm"
	"github.com/seaward/sounder/debugger/terminal/plainterm"
	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/logger"
	"github.com/seaward/sounder/modalflag"
	"github.com/seaward/sounder/performance"
	"github.com/seaward/sounder/scenario"
	"github.com/seaward/sounder/scope"
	"github.com/seaward/sounder/statsview"
	"github.com/seaward/sounder/trace"
	"github.com/seaward/sounder/version"
	"github.com/seaward/sounder/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	logEcho := md.AddBool("log", false, "echo log entries to stderr as they happen")

	p, err := md.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
	if p != modalflag.ParseContinue {
		os.Exit(0)
	}

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	switch md.Mode() {
	case "RUN":
		err = runScenario(md)
	case "DEBUG":
		err = debug(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
}

func runScenario(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the RUN mode plays a scenario file through the instrument")

	wavPin := md.AddString("wav", "", "write the named pin to a WAV file (TX, RXOUT, RNGPWM or TONE)")
	wavFile := md.AddString("wavfile", "sounder.wav", "filename for the -wav option")
	scopeAddr := md.AddString("scope", "", "serve pin samples over a websocket at this address")
	traceDepth := md.AddInt("tracedepth", 0, "number of samples kept for inspection")
	stats := md.AddBool("statsview", false, "run the statsview server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("run: a single scenario file is required")
	}

	scn, err := scenario.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	snd := hardware.NewSounder()

	rec := trace.NewRecorder(*traceDepth)
	snd.Attach(rec)

	if *wavPin != "" {
		aw, err := wavwriter.New(*wavFile, *wavPin, 0)
		if err != nil {
			return err
		}
		snd.Attach(aw)
	}

	if *scopeAddr != "" {
		scp := scope.NewScope(0)
		snd.Attach(scp)
		go func() {
			http.Handle("/scope", scp)
			if err := http.ListenAndServe(*scopeAddr, nil); err != nil {
				logger.Logf("scope", "server: %v", err)
			}
		}()
	}

	if err := scn.Run(snd); err != nil {
		return err
	}
	if err := snd.End(); err != nil {
		return err
	}

	fmt.Println(rec.String())

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "color", "terminal type to use in debug mode: color, plain")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch *termType {
	case "color":
		term = &colorterm.ColorTerminal{}
	case "plain":
		term = plainterm.NewTerminal(nil, nil)
	default:
		return fmt.Errorf("debug: unknown terminal type: %s", *termType)
	}

	dbg, err := debugger.NewDebugger(term)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (with an additional short lead time)")
	profile := md.AddString("profile", "none", "run with profiler: cpu, mem, both, none")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, *duration)
}
