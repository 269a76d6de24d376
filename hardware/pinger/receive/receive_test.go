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

package receive_test

import (
	"testing"

	"github.com/seaward/sounder/hardware/pinger/receive"
	"github.com/seaward/sounder/test"
)

func TestDetectionLatency(t *testing.T) {
	var rx receive.Receive

	// the raw edge arrives with the window count well past the blanking
	// interval. the detection registers one tick later
	rx.Tick(false, 40000)
	test.Equate(t, rx.RxOut, false)

	rx.Tick(true, 40000)
	test.Equate(t, rx.RxOut, false)

	rx.Tick(true, 40001)
	test.Equate(t, rx.RxOut, true)

	// a single-tick pulse, not a level
	rx.Tick(true, 40002)
	test.Equate(t, rx.RxOut, false)
}

func TestBlanking(t *testing.T) {
	var rx receive.Receive

	// an edge during the blanking interval is discarded entirely
	rx.Tick(true, 10000)
	test.Equate(t, rx.RxOut, false)
	rx.Tick(true, 10001)
	test.Equate(t, rx.RxOut, false)

	// and it does not resurface after blanking ends: the pending detection
	// was consumed, not delayed
	rx.Tick(true, receive.Blank)
	test.Equate(t, rx.RxOut, false)
	rx.Tick(true, receive.Blank+1)
	test.Equate(t, rx.RxOut, false)
}

func TestBlankingBoundary(t *testing.T) {
	var rx receive.Receive

	// an edge whose registered output lands exactly on the end of the
	// blanking interval is accepted
	rx.Tick(true, receive.Blank-1)
	test.Equate(t, rx.RxOut, false)
	rx.Tick(true, receive.Blank)
	test.Equate(t, rx.RxOut, true)
}

func TestMultipleEchoes(t *testing.T) {
	var rx receive.Receive

	// each distinct rising edge after blanking produces its own pulse
	rx.Tick(true, 40000)
	rx.Tick(true, 40001)
	test.Equate(t, rx.RxOut, true)

	rx.Tick(false, 40002)
	test.Equate(t, rx.RxOut, false)

	rx.Tick(true, 40003)
	rx.Tick(true, 40004)
	test.Equate(t, rx.RxOut, true)
}
