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

// Package edge implements the two-bit shift register used to convert a level
// signal into a single-tick pulse. Both the trigger input and the raw
// receiver input pass through one of these.
package edge

import (
	"fmt"
)

// Detector is a two-bit shift register recording the history of a level
// input. The zero value is ready to use: a detector that has only ever seen
// a low input.
type Detector struct {
	hist uint8
}

// Shift the current level of the input into the detector. Returns true
// exactly once per physical rising transition of the input, regardless of
// how long the input is held high.
func (det *Detector) Shift(level bool) bool {
	det.hist = (det.hist << 1) & 0b11
	if level {
		det.hist |= 0b01
	}

	// a rising edge is a low followed by a high and nothing else
	return det.hist == 0b01
}

// Reset the detector to its power-on state.
func (det *Detector) Reset() {
	det.hist = 0
}

func (det Detector) String() string {
	return fmt.Sprintf("%02b", det.hist)
}
