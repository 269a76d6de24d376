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

// Package rangegate implements the range-gate generator. The gate rises at a
// fixed offset into the window and falls at the earlier of echo detection or
// window timeout. Its high duration, measured by the host, is the range
// measurement.
package rangegate

import (
	"fmt"

	"github.com/seaward/sounder/hardware/pinger/pri"
)

// Holdoff is the window count at which the gate rises (the ARD_HOLDOFF
// parameter of the instrument).
const Holdoff = 1000

// MaxRange is the window count at which the gate falls if no echo has been
// detected (the ARD_MAX_RANGE parameter of the instrument). A maximum-width
// gate means "no target in range".
const MaxRange = pri.WindowLength

// Gate is the range-gate generator.
type Gate struct {
	// the rngPwm output line
	Out bool
}

// Tick advances the gate one derived-clock tick. The count argument is the
// window count for this tick, as returned by the pulse controller; rxOut is
// the echo flag for this tick.
//
// The conditions are a priority chain, not a latch: an echo pulse arriving
// after the gate has already fallen has no effect.
func (gt *Gate) Tick(count uint32, rxOut bool) {
	switch {
	case count == Holdoff:
		gt.Out = true
	case rxOut:
		gt.Out = false
	case count == MaxRange:
		gt.Out = false
	}
}

// Reset the gate to its power-on state.
func (gt *Gate) Reset() {
	gt.Out = false
}

func (gt Gate) String() string {
	out := 0
	if gt.Out {
		out = 1
	}
	return fmt.Sprintf("gate=%d", out)
}
