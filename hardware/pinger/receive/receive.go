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

// Package receive implements receive blanking and echo detection. The raw
// receiver input is edge-detected and the result masked during the blanking
// interval at the start of the window, so that transmitter leakage and
// ring-down are never mistaken for an echo.
package receive

import (
	"fmt"

	"github.com/seaward/sounder/hardware/pinger/edge"
)

// Blank is the receive blanking interval in derived-clock ticks (the
// RECEIVE_BLANK parameter of the instrument). It comfortably exceeds the
// transmit envelope plus acoustic and electrical ring-down.
const Blank = 35000

// Hold is the RECEIVE_HOLD parameter of the instrument. Declared in the
// schematic but referenced by nothing; reserved.
const Hold = 500

// Receive is the receive blanking and echo detection stage.
type Receive struct {
	// edge history of the raw receiver input (detShift in the schematic)
	det edge.Detector

	// a detection shifted in on the previous tick, waiting to be registered
	pending bool

	// the gated echo flag. a single-tick pulse per accepted echo edge, one
	// tick after the raw input edge (the detector output is registered)
	RxOut bool
}

// Tick advances the receive stage one derived-clock tick. The count
// argument is the window count for this tick, as returned by the pulse
// controller.
func (rx *Receive) Tick(rxIn bool, count uint32) {
	// the detection made on the previous tick appears on the output this
	// tick, unless blanked. blanked detections are discarded, not delayed
	rx.RxOut = rx.pending && count >= Blank

	rx.pending = rx.det.Shift(rxIn)
}

// Reset the receive stage to its power-on state.
func (rx *Receive) Reset() {
	rx.det.Reset()
	rx.pending = false
	rx.RxOut = false
}

func (rx Receive) String() string {
	out := 0
	if rx.RxOut {
		out = 1
	}
	return fmt.Sprintf("rx=%d hist=%s", out, rx.det.String())
}
