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

// Package clocks defines the constant values that describe the clock tree of
// the instrument.
//
// The crystal drives the clock divider directly. Everything else in the
// pinger runs in the derived (half-rate) clock domain. All timing parameters
// elsewhere in the hardware package are expressed in derived-clock ticks.
package clocks

// Crystal is the full-rate oscillator frequency in Hz.
const Crystal = 32e6

// FullPerDerived is the number of full-rate ticks per derived-clock tick.
const FullPerDerived = 2

// DerivedHz is the derived (half-rate) clock frequency in Hz. With a 32MHz
// crystal the carrier generator divides this down to an ultrasonic 40.8kHz,
// a close match for the usual 40kHz transducer.
const DerivedHz = Crystal / FullPerDerived
