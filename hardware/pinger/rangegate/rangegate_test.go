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

package rangegate_test

import (
	"testing"

	"github.com/seaward/sounder/hardware/pinger/rangegate"
	"github.com/seaward/sounder/test"
)

func TestGateRisesAtHoldoff(t *testing.T) {
	gt := rangegate.Gate{}

	for c := uint32(0); c < rangegate.Holdoff; c++ {
		gt.Tick(c, false)
		test.Equate(t, gt.Out, false)
	}

	gt.Tick(rangegate.Holdoff, false)
	test.Equate(t, gt.Out, true)

	// and stays high thereafter
	for c := uint32(rangegate.Holdoff + 1); c < rangegate.Holdoff+100; c++ {
		gt.Tick(c, false)
		test.Equate(t, gt.Out, true)
	}
}

func TestGateFallsOnEcho(t *testing.T) {
	gt := rangegate.Gate{}
	gt.Tick(rangegate.Holdoff, false)
	test.Equate(t, gt.Out, true)

	gt.Tick(rangegate.Holdoff+1, false)
	test.Equate(t, gt.Out, true)

	gt.Tick(rangegate.Holdoff+2, true)
	test.Equate(t, gt.Out, false)

	// a second echo pulse has no effect on an already-low gate
	gt.Tick(rangegate.Holdoff+3, true)
	test.Equate(t, gt.Out, false)
	gt.Tick(rangegate.Holdoff+4, false)
	test.Equate(t, gt.Out, false)
}

func TestGateFallsAtMaxRange(t *testing.T) {
	gt := rangegate.Gate{}
	gt.Tick(rangegate.Holdoff, false)
	test.Equate(t, gt.Out, true)

	gt.Tick(rangegate.MaxRange-1, false)
	test.Equate(t, gt.Out, true)

	gt.Tick(rangegate.MaxRange, false)
	test.Equate(t, gt.Out, false)
}

func TestHoldoffWinsOverEcho(t *testing.T) {
	// an echo flag on the holdoff tick itself cannot keep the gate low. the
	// rise condition is first in the priority chain.
	gt := rangegate.Gate{}
	gt.Tick(rangegate.Holdoff, true)
	test.Equate(t, gt.Out, true)
}

func TestString(t *testing.T) {
	gt := rangegate.Gate{}
	test.Equate(t, gt.String(), "gate=0")

	gt.Tick(rangegate.Holdoff, false)
	test.Equate(t, gt.String(), "gate=1")
}

func TestGateHoldsOutsideWindow(t *testing.T) {
	// with no window running the count stays at zero and the gate holds its
	// level indefinitely.
	gt := rangegate.Gate{}
	for i := 0; i < 1000; i++ {
		gt.Tick(0, false)
		test.Equate(t, gt.Out, false)
	}
}
