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

// Package hardware is the top-level container for the instrument. The
// Sounder type owns the crystal-rate clock divider, the ranging chip and
// the list of attached signal monitors.
package hardware

import (
	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware/pinger"
	"github.com/seaward/sounder/hardware/signal"
)

// sentinal error returned by Run() loops.
const (
	// PowerOff is the error returned when a continueCheck function has
	// requested a clean end to a Run() loop.
	PowerOff = "power off"
)

// how often continueCheck is consulted, in derived-clock ticks.
const runCheckInterval = 10000

// Sounder is the instrument itself: clock divider plus ranging chip.
type Sounder struct {
	Pinger *pinger.Pinger

	// the divided clock line. the chip steps on the rising transition
	halfClock bool

	// derived-clock ticks since power-on or reset
	tick uint64

	monitors []signal.Monitor
}

// NewSounder creates a new instrument in its power-on state.
func NewSounder() *Sounder {
	return &Sounder{
		Pinger: pinger.NewPinger(),
	}
}

// Attach a signal monitor. Every attached monitor receives one Sample per
// derived-clock tick.
func (snd *Sounder) Attach(mon signal.Monitor) {
	snd.monitors = append(snd.monitors, mon)
}

// Tick advances the instrument one full-rate crystal tick. The chip itself
// only steps on every second call, when the divided clock line rises.
func (snd *Sounder) Tick() error {
	snd.halfClock = !snd.halfClock
	if !snd.halfClock {
		return nil
	}
	return snd.Step()
}

// Step advances the instrument one derived-clock tick, stepping the chip
// directly and bypassing the clock divider. Mixing Tick() and Step() calls
// is fine; Step() does not disturb the divider state.
func (snd *Sounder) Step() error {
	smp := snd.Pinger.Step(snd.tick)
	snd.tick++

	for _, mon := range snd.monitors {
		if err := mon.Signal(smp); err != nil {
			return curated.Errorf("sounder: %v", err)
		}
	}

	return nil
}

// Ticks returns the number of derived-clock ticks since power-on or the
// most recent Reset().
func (snd *Sounder) Ticks() uint64 {
	return snd.tick
}

// Run the instrument until continueCheck returns false or an error. The
// check function is consulted at a coarse interval, not every tick.
//
// A PowerOff error from continueCheck is a clean quit and is absorbed.
func (snd *Sounder) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		for i := 0; i < runCheckInterval; i++ {
			if err := snd.Step(); err != nil {
				return err
			}
		}

		cont, err := continueCheck()
		if err != nil {
			if curated.Is(err, PowerOff) {
				return nil
			}
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForTicks runs the instrument for a fixed number of derived-clock
// ticks.
func (snd *Sounder) RunForTicks(numTicks uint64) error {
	for i := uint64(0); i < numTicks; i++ {
		if err := snd.Step(); err != nil {
			return err
		}
	}
	return nil
}

// End a run, flushing every attached monitor. Call once, when the
// instrument is finished with.
func (snd *Sounder) End() error {
	var rerr error
	for _, mon := range snd.monitors {
		if err := mon.End(); err != nil && rerr == nil {
			rerr = curated.Errorf("sounder: %v", err)
		}
	}
	return rerr
}

// Reset the instrument to its power-on state. Attached monitors are kept.
func (snd *Sounder) Reset() {
	snd.Pinger.Reset()
	snd.halfClock = false
	snd.tick = 0
}
