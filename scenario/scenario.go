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

// Package scenario drives the instrument from a stimulus file. A scenario
// names a run length and a list of input pin events, each taking effect at
// a given derived-clock tick. Scenario files are the main way of exercising
// the instrument from the command line without writing any code.
package scenario

import (
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/logger"
)

// Input pin names, as used in the line field of a scenario event.
const (
	LineTrigger = "trigger"
	LineRxIn    = "rxin"
	LineTone    = "tone"
	LineBus0    = "bus0"
	LineBus1    = "bus1"
	LineBus2    = "bus2"
)

// Event is a single input pin change.
type Event struct {
	// the derived-clock tick the change takes effect on
	Tick uint64

	// one of the Line* constants
	Line string

	// the new level of the pin
	Level bool
}

// Scenario is a complete stimulus script.
type Scenario struct {
	Description string
	Ticks       uint64
	Events      []Event
}

// Load a scenario from a file. The format is decided by the file extension;
// yaml, toml and json all work.
func Load(filename string) (*Scenario, error) {
	vpr := viper.New()
	vpr.SetConfigFile(filename)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, curated.Errorf("scenario: %v", err)
	}

	scn := &Scenario{}
	if err := vpr.Unmarshal(scn); err != nil {
		return nil, curated.Errorf("scenario: %v", err)
	}

	if err := scn.normalise(); err != nil {
		return nil, err
	}

	logger.Logf("scenario", "%s: %d events over %d ticks", filename, len(scn.Events), scn.Ticks)

	return scn, nil
}

// normalise validates the event list and puts it in tick order. events on
// the same tick keep their file order.
func (scn *Scenario) normalise() error {
	if scn.Ticks == 0 {
		return curated.Errorf("scenario: run length of zero ticks")
	}

	for i := range scn.Events {
		ev := &scn.Events[i]
		ev.Line = strings.ToLower(ev.Line)
		switch ev.Line {
		case LineTrigger, LineRxIn, LineTone, LineBus0, LineBus1, LineBus2:
		default:
			return curated.Errorf("scenario: unknown input line: %s", ev.Line)
		}
		if ev.Tick >= scn.Ticks {
			return curated.Errorf("scenario: event beyond end of run (tick %d)", ev.Tick)
		}
	}

	sort.SliceStable(scn.Events, func(i, j int) bool {
		return scn.Events[i].Tick < scn.Events[j].Tick
	})

	return nil
}

func apply(snd *hardware.Sounder, ev Event) {
	inp := &snd.Pinger.Input
	switch ev.Line {
	case LineTrigger:
		inp.Trigger = ev.Level
	case LineRxIn:
		inp.RxIn = ev.Level
	case LineTone:
		inp.ToneEnable = ev.Level
	case LineBus0:
		inp.Bus[0] = ev.Level
	case LineBus1:
		inp.Bus[1] = ev.Level
	case LineBus2:
		inp.Bus[2] = ev.Level
	}
}

// Run the scenario against the instrument. Each event is applied before the
// tick it names, so an event at tick zero shapes the very first sample.
func (scn *Scenario) Run(snd *hardware.Sounder) error {
	next := 0

	for t := uint64(0); t < scn.Ticks; t++ {
		for next < len(scn.Events) && scn.Events[next].Tick == t {
			apply(snd, scn.Events[next])
			next++
		}

		if err := snd.Step(); err != nil {
			return err
		}
	}

	return nil
}
