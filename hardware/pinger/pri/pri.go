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

// Package pri implements the pulse-repetition-interval controller, the heart
// of the pinger. A trigger pulse opens a fixed-length window: the transmit
// envelope is high for an initial sub-interval and the controller then
// listens until the window elapses. One window per trigger, fire and forget.
package pri

import (
	"fmt"
)

// WindowLength is the length of the pulse repetition interval in
// derived-clock ticks (the ARD_MAX_RANGE parameter of the instrument; the
// range gate generator uses the same value as its timeout).
const WindowLength = 1000000

// TransmitDuty is the length of the transmit envelope in derived-clock
// ticks. The envelope is high for window ticks [0, TransmitDuty).
const TransmitDuty = 4000

// Controller is the PRI state machine. It is in one of three states:
//
//	Idle        Active=false
//	Transmit    Active=true, High=true   (window count in [0, TransmitDuty))
//	Listening   Active=true, High=false
type Controller struct {
	// the window is open (txEnable in the schematic)
	Active bool

	// the carrier is gated onto the output line (txDuty in the schematic)
	High bool

	// ticks since the window opened. 22 bits in the silicon. always zero
	// when idle: window completion is the only path back to idle and it
	// resets the counter
	Count uint32
}

// Tick advances the controller one derived-clock tick. The triggered
// argument is the single-tick output of the trigger edge detector.
//
// The returned value is the window count for this tick. On the completion
// tick it is WindowLength, even though the stored counter has already been
// reset to zero; downstream components (receive blanking, range gate) time
// themselves against this value.
func (pc *Controller) Tick(triggered bool) uint32 {
	if triggered && !pc.Active {
		// open a new window. the count is zero so the envelope rises
		// immediately
		pc.Active = true
		pc.High = true
		return pc.Count
	}

	// a trigger arriving mid-window is absorbed: it cannot shorten or
	// extend the window, and it must not stall the counter either

	if !pc.Active {
		return pc.Count
	}

	pc.Count++
	count := pc.Count

	switch pc.Count {
	case TransmitDuty:
		pc.High = false
	case WindowLength:
		// window complete. the envelope flag retains its last value but is
		// irrelevant once inactive
		pc.Active = false
		pc.Count = 0
	}

	return count
}

// Reset the controller to its power-on state.
func (pc *Controller) Reset() {
	pc.Active = false
	pc.High = false
	pc.Count = 0
}

func (pc Controller) String() string {
	switch {
	case !pc.Active:
		return "idle"
	case pc.High:
		return fmt.Sprintf("transmit count=%d", pc.Count)
	}
	return fmt.Sprintf("listening count=%d", pc.Count)
}
