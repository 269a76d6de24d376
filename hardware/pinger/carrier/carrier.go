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

// Package carrier implements the free-running waveform generator that
// produces the transmit carrier. The generator runs whether or not a
// transmit burst is in progress; the duplexer decides whether the carrier
// reaches the output line.
package carrier

import (
	"fmt"
)

// Duty is the count at which the waveform counter wraps and the carrier
// level inverts (the WAVEFORM_DUTY parameter of the instrument).
const Duty = 195

// Period of the carrier square wave in derived-clock ticks.
const Period = 2 * (Duty + 1)

// Generator produces the fixed-frequency transmit carrier. In addition to
// the carrier itself, bit 7 of the waveform counter is tapped off as a
// slower (and irregular-duty) clock for the tone generator.
type Generator struct {
	// the waveform counter. 8 bits in the silicon, range [0, Duty]
	Count uint8

	// the carrier level
	Level bool

	// true if bit 7 of the counter transitioned from low to high on the
	// most recent tick
	slowEdge bool
}

// Tick advances the generator one derived-clock tick.
func (car *Generator) Tick() {
	prev := car.Count

	if car.Count == Duty {
		car.Count = 0
		car.Level = !car.Level
	} else {
		car.Count++
	}

	car.slowEdge = prev&0x80 == 0x00 && car.Count&0x80 == 0x80
}

// SlowEdge returns true if the most recent Tick() saw a rising transition of
// bit 7 of the waveform counter. This happens once per counter cycle, when
// the count reaches 128.
func (car Generator) SlowEdge() bool {
	return car.slowEdge
}

// Reset the generator to its power-on state.
func (car *Generator) Reset() {
	car.Count = 0
	car.Level = false
	car.slowEdge = false
}

func (car Generator) String() string {
	lvl := 0
	if car.Level {
		lvl = 1
	}
	return fmt.Sprintf("wave=%d count=%03d", lvl, car.Count)
}
