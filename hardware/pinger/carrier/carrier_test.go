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

package carrier_test

import (
	"testing"

	"github.com/seaward/sounder/hardware/pinger/carrier"
	"github.com/seaward/sounder/test"
)

func TestPeriod(t *testing.T) {
	var car carrier.Generator

	// the carrier level inverts every Duty+1 ticks, giving the fixed period
	for i := 0; i < carrier.Duty+1; i++ {
		test.Equate(t, car.Level, false)
		car.Tick()
	}
	test.Equate(t, car.Level, true)

	for i := 0; i < carrier.Duty+1; i++ {
		test.Equate(t, car.Level, true)
		car.Tick()
	}
	test.Equate(t, car.Level, false)
	test.Equate(t, carrier.Period, 392)
}

func TestSlowEdge(t *testing.T) {
	var car carrier.Generator

	// bit 7 of the counter rises exactly once per counter cycle, when the
	// count reaches 128
	edges := 0
	for i := 0; i < carrier.Period; i++ {
		car.Tick()
		if car.SlowEdge() {
			edges++
			test.Equate(t, car.Count, 128)
		}
	}
	test.Equate(t, edges, 2)

	// the wrap from Duty to zero is a falling transition of bit 7, not a
	// rising one
	car.Reset()
	car.Count = carrier.Duty
	car.Tick()
	test.Equate(t, car.Count, 0)
	test.Equate(t, car.SlowEdge(), false)
}
