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

// Package tone implements the audible locator tone generator. The generator
// is stepped by the slow edge tapped from the carrier counter, not by the
// derived clock directly.
package tone

import (
	"fmt"
)

// Wrap is the count at which the tone counter resets and the tone level
// inverts.
const Wrap = 200

// Generator produces the locator tone. The counter keeps running whether or
// not the tone is enabled; the enable gates the output only.
type Generator struct {
	// the tone counter. 9 bits in the silicon, range [0, Wrap]
	Count uint16

	// the tone level, ungated
	Level bool
}

// Tick advances the generator one step. Call only on the rising transition
// of the carrier counter's slow edge.
func (gen *Generator) Tick() {
	if gen.Count == Wrap {
		gen.Count = 0
		gen.Level = !gen.Level
	} else {
		gen.Count++
	}
}

// Output is the tone level gated by the external enable input.
func (gen Generator) Output(enable bool) bool {
	return gen.Level && enable
}

// Reset the generator to its power-on state.
func (gen *Generator) Reset() {
	gen.Count = 0
	gen.Level = false
}

func (gen Generator) String() string {
	lvl := 0
	if gen.Level {
		lvl = 1
	}
	return fmt.Sprintf("tone=%d count=%03d", lvl, gen.Count)
}
