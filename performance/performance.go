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

// Package performance measures how fast the instrument simulates relative
// to the real silicon, optionally under the CPU or memory profiler.
package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/seaward/sounder/curated"
	"github.com/seaward/sounder/hardware"
	"github.com/seaward/sounder/hardware/clocks"
)

// Check the performance of the simulation. The instrument runs flat out,
// repeatedly triggered, for the given duration. The result is written to
// output as ticks per second and as a ratio against the derived clock rate
// of the real hardware.
func Check(output io.Writer, profile Profile, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	snd := hardware.NewSounder()

	// a held-high trigger opens only one window: the edge detector needs to
	// see the line low again before it reports another rising edge. the
	// trigger is toggled at every continueCheck instead, giving a fresh
	// edge every other check and keeping the instrument cycling through
	// windows for the whole measurement
	snd.Pinger.Input.Trigger = true

	var timedOut atomic.Bool
	timer := time.AfterFunc(dur, func() {
		timedOut.Store(true)
	})
	defer timer.Stop()

	startTime := time.Now()

	runner := func() error {
		return snd.Run(func() (bool, error) {
			snd.Pinger.Input.Trigger = !snd.Pinger.Input.Trigger
			return !timedOut.Load(), nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	ticks := snd.Ticks()

	rate := float64(ticks) / elapsed
	ratio := 100 * rate / clocks.DerivedHz
	fmt.Fprintf(output, "%.0f ticks/sec (%d ticks in %.2f seconds) %.1f%% of real hardware\n",
		rate, ticks, elapsed, ratio)

	return nil
}
