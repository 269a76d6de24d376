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

// Package pinger implements the ranging chip itself: trigger detection, the
// pulse-repetition window, carrier and tone generation, receive blanking,
// the range gate and the tri-state duplexer. Everything in this package runs
// in the derived (half-rate) clock domain; the clock divider lives one level
// up, in the hardware package.
package pinger

import (
	"strings"

	"github.com/seaward/sounder/hardware/pinger/carrier"
	"github.com/seaward/sounder/hardware/pinger/edge"
	"github.com/seaward/sounder/hardware/pinger/pri"
	"github.com/seaward/sounder/hardware/pinger/rangegate"
	"github.com/seaward/sounder/hardware/pinger/receive"
	"github.com/seaward/sounder/hardware/pinger/tone"
	"github.com/seaward/sounder/hardware/signal"
)

// Input is the value of every input pin for one derived-clock tick. The
// host (or a stimulus script) sets fields between calls to Step().
type Input struct {
	// trigger line. a rising edge starts a ranging cycle
	Trigger bool

	// raw receiver comparator output
	RxIn bool

	// enables the locator tone output
	ToneEnable bool

	// control-bus lines, forwarded to the output unchanged
	Bus [3]bool
}

// Pinger is the ranging chip. Create with NewPinger().
type Pinger struct {
	// input pins. the host mutates this directly
	Input Input

	Trig    edge.Detector
	PRI     pri.Controller
	Carrier carrier.Generator
	Tone    tone.Generator
	Receive receive.Receive
	Gate    rangegate.Gate
}

// NewPinger creates a new instance of the ranging chip, in its power-on
// state.
func NewPinger() *Pinger {
	return &Pinger{}
}

// Step advances the chip one derived-clock tick and returns the resulting
// output pin values. The tick argument is recorded in the returned Sample
// and has no effect on the hardware.
//
// The stages are stepped in dataflow order: a trigger edge opens the window
// on the same tick it is detected, and the receive and range-gate stages see
// the window count for the current tick.
func (png *Pinger) Step(tick uint64) signal.Sample {
	triggered := png.Trig.Shift(png.Input.Trigger)
	count := png.PRI.Tick(triggered)

	png.Carrier.Tick()
	if png.Carrier.SlowEdge() {
		png.Tone.Tick()
	}

	png.Receive.Tick(png.Input.RxIn, count)
	png.Gate.Tick(count, png.Receive.RxOut)

	// the duplexer. the carrier reaches the shared line only while the
	// transmit envelope is high; at all other times the line is released so
	// the receiver can use it
	tx := signal.TxReleased
	if png.PRI.Active && png.PRI.High {
		if png.Carrier.Level {
			tx = signal.TxHigh
		} else {
			tx = signal.TxLow
		}
	}

	return signal.Sample{
		Tick:   tick,
		Tx:     tx,
		RxOut:  png.Receive.RxOut,
		RngPwm: png.Gate.Out,
		Tone:   png.Tone.Output(png.Input.ToneEnable),
		Bus:    png.Input.Bus,
	}
}

// Reset the chip to its power-on state. Input pin values are left as they
// are; they belong to the host, not the chip.
func (png *Pinger) Reset() {
	png.Trig.Reset()
	png.PRI.Reset()
	png.Carrier.Reset()
	png.Tone.Reset()
	png.Receive.Reset()
	png.Gate.Reset()
}

func (png *Pinger) String() string {
	b := strings.Builder{}
	b.WriteString(png.PRI.String())
	b.WriteString("\n")
	b.WriteString(png.Carrier.String())
	b.WriteString("\n")
	b.WriteString(png.Tone.String())
	b.WriteString("\n")
	b.WriteString(png.Receive.String())
	b.WriteString("\n")
	b.WriteString(png.Gate.String())
	return b.String()
}
