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

package tone_test

import (
	"testing"

	"github.com/seaward/sounder/hardware/pinger/tone"
	"github.com/seaward/sounder/test"
)

func TestToggleCadence(t *testing.T) {
	var gen tone.Generator

	// the level inverts every Wrap+1 steps
	for i := 0; i < tone.Wrap+1; i++ {
		test.Equate(t, gen.Level, false)
		gen.Tick()
	}
	test.Equate(t, gen.Level, true)

	for i := 0; i < tone.Wrap+1; i++ {
		gen.Tick()
	}
	test.Equate(t, gen.Level, false)
}

func TestEnableGatesOutputOnly(t *testing.T) {
	var gen tone.Generator

	// run the generator to a point where the level is high
	for i := 0; i < tone.Wrap+1; i++ {
		gen.Tick()
	}
	test.Equate(t, gen.Level, true)

	// the output follows the enable; the generator state does not
	test.Equate(t, gen.Output(true), true)
	test.Equate(t, gen.Output(false), false)
	test.Equate(t, gen.Level, true)

	// the counter keeps running while the output is disabled
	count := gen.Count
	gen.Tick()
	test.Equate(t, gen.Count, count+1)
}
