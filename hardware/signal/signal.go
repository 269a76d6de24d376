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

// Package signal exposes the interface between the pinger hardware and
// anything that wants to observe its output pins.
package signal

import (
	"strings"
)

// TxLine is the value of the shared transmit/receive line. The line is
// tri-state: the duplexer either drives it with the carrier or releases it
// entirely so that external circuitry can use the same physical line as a
// receiver input. A released line is not a driven low; the two must never be
// conflated.
type TxLine int

// Valid TxLine values.
const (
	TxReleased TxLine = iota
	TxLow
	TxHigh
)

func (tx TxLine) String() string {
	switch tx {
	case TxReleased:
		return "Z"
	case TxLow:
		return "0"
	case TxHigh:
		return "1"
	}
	panic("unknown TxLine value")
}

// Driven returns true if the line is being driven by the duplexer.
func (tx TxLine) Driven() bool {
	return tx != TxReleased
}

// Sample is the value of every output pin at the end of one derived-clock
// tick.
type Sample struct {
	// the derived-clock tick the sample was taken on. the first tick after
	// power-on or reset is tick zero
	Tick uint64

	// the shared transmit/receive line (driven carrier or released)
	Tx TxLine

	// single-tick pulse per accepted echo edge
	RxOut bool

	// the range gate. the high duration, measured externally, is
	// proportional to echo time-of-flight
	RngPwm bool

	// the gated locator tone
	Tone bool

	// control-bus passthrough lines, forwarded unchanged
	Bus [3]bool
}

func (s Sample) String() string {
	b := strings.Builder{}
	if s.RxOut {
		b.WriteString("RXOUT ")
	}
	if s.RngPwm {
		b.WriteString("RNGPWM ")
	}
	if s.Tone {
		b.WriteString("TONE ")
	}
	b.WriteString("TX=")
	b.WriteString(s.Tx.String())
	return b.String()
}

// Monitor implementations receive one Sample per derived-clock tick.
//
// Implementations must not retain a reference to the Sample; it is a value
// copy and free to keep, but the point is that there is no shared state to
// coordinate over.
type Monitor interface {
	// Signal is called once per derived-clock tick, after the tick's state
	// has been committed.
	Signal(Sample) error

	// End is called when the run has finished. Monitors that buffer (file
	// writers for example) should flush here.
	End() error
}
